package card

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// Load reads every source and merges the combined rows. It is all or nothing:
// the first unreadable source or malformed row fails the whole call.
func Load(sources ...Source) ([]Card, error) {
	var rows []RawRow
	for _, src := range sources {
		r, err := ReadRows(src)
		if err != nil {
			return nil, err
		}
		rows = append(rows, r...)
	}
	return Merge(rows), nil
}

// Merge groups rows by key and folds duplicates into one Card per key.
//
// Rows are ordered by key (case-insensitive), then by value (case-insensitive).
// Exact-case ties are broken on the raw strings so the output never depends on
// input order. Keys that differ only in case, like "Kb" and "KB", sort next to
// each other but stay separate cards. A row whose value already exists on its
// card is dropped together with its link.
func Merge(rows []RawRow) []Card {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, compareRows)

	var cards []Card
	for _, row := range sorted {
		n := len(cards)
		if n == 0 || cards[n-1].Key != row.Key {
			cards = append(cards, Card{
				Key:    row.Key,
				Values: []string{row.Value},
				Links:  []string{row.Link},
			})
			continue
		}

		last := &cards[n-1]
		if last.HasValue(row.Value) {
			continue
		}
		last.Values = append(last.Values, row.Value)
		last.Links = append(last.Links, row.Link)
	}

	return cards
}

func compareRows(a, b RawRow) int {
	if c := strings.Compare(strings.ToLower(a.Key), strings.ToLower(b.Key)); c != 0 {
		return c
	}
	if c := strings.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(a.Value), strings.ToLower(b.Value)); c != 0 {
		return c
	}
	if c := strings.Compare(a.Value, b.Value); c != 0 {
		return c
	}
	return strings.Compare(a.Link, b.Link)
}

// LengthsPresent returns the distinct key lengths in ascending order, led by
// the sentinel 0 which means "no filter".
func LengthsPresent(cards []Card) []int {
	lengths := []int{0}
	for _, c := range cards {
		l := c.KeyLength()
		if !slices.Contains(lengths, l) {
			lengths = append(lengths, l)
		}
	}
	slices.Sort(lengths)
	return lengths
}

// Shuffle randomizes display order in place. Load itself is deterministic.
func Shuffle(cards []Card, r *rand.Rand) {
	shuffle := rand.Shuffle
	if r != nil {
		shuffle = r.Shuffle
	}
	shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
