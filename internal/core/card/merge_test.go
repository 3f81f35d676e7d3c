package card

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_KilobitScenario(t *testing.T) {
	rows := []RawRow{
		{Key: "Kb", Value: "Kilobit", Link: "L1"},
		{Key: "Kb", Value: "Kilobit", Link: "L1"},
		{Key: "KB", Value: "Kilobyte", Link: "L2"},
		{Key: "KB", Value: "Knowledge Base", Link: "L3"},
	}

	cards := Merge(rows)

	require.Len(t, cards, 2)
	assert.ElementsMatch(t, []Card{
		{Key: "Kb", Values: []string{"Kilobit"}, Links: []string{"L1"}},
		{Key: "KB", Values: []string{"Kilobyte", "Knowledge Base"}, Links: []string{"L2", "L3"}},
	}, cards)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		rows []RawRow
		want []Card
	}{
		{
			name: "empty input",
			rows: nil,
			want: nil,
		},
		{
			name: "values ordered case-insensitively within a key",
			rows: []RawRow{
				{Key: "AP", Value: "access point", Link: "b"},
				{Key: "AP", Value: "Application", Link: "a"},
			},
			want: []Card{
				{Key: "AP", Values: []string{"access point", "Application"}, Links: []string{"b", "a"}},
			},
		},
		{
			name: "duplicate value drops its link",
			rows: []RawRow{
				{Key: "DNS", Value: "Domain Name System", Link: "first"},
				{Key: "DNS", Value: "Domain Name System", Link: "second"},
			},
			want: []Card{
				{Key: "DNS", Values: []string{"Domain Name System"}, Links: []string{"first"}},
			},
		},
		{
			name: "value match is case-sensitive",
			rows: []RawRow{
				{Key: "IP", Value: "internet protocol"},
				{Key: "IP", Value: "Internet Protocol"},
			},
			want: []Card{
				{Key: "IP", Values: []string{"Internet Protocol", "internet protocol"}, Links: []string{"", ""}},
			},
		},
		{
			name: "keys sorted case-insensitively",
			rows: []RawRow{
				{Key: "usb", Value: "Universal Serial Bus"},
				{Key: "ACL", Value: "Access Control List"},
				{Key: "Mac", Value: "Macintosh"},
			},
			want: []Card{
				{Key: "ACL", Values: []string{"Access Control List"}, Links: []string{""}},
				{Key: "Mac", Values: []string{"Macintosh"}, Links: []string{""}},
				{Key: "usb", Values: []string{"Universal Serial Bus"}, Links: []string{""}},
			},
		},
		{
			name: "interleaved casing stays grouped",
			rows: []RawRow{
				{Key: "KB", Value: "Zettabyte-ish"},
				{Key: "Kb", Value: "Kilobit"},
				{Key: "KB", Value: "Abc"},
			},
			want: []Card{
				{Key: "KB", Values: []string{"Abc", "Zettabyte-ish"}, Links: []string{"", ""}},
				{Key: "Kb", Values: []string{"Kilobit"}, Links: []string{""}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.rows))
		})
	}
}

func TestMerge_ExactKeyUniqueAndCaseFoldedAdjacent(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	keys := []string{"Kb", "KB", "kb", "DNS", "dns", "IP", "HTTPS"}
	values := []string{"alpha", "Alpha", "beta", "gamma ", "delta"}

	for i := 0; i < 50; i++ {
		var rows []RawRow
		for j := 0; j < 30; j++ {
			rows = append(rows, RawRow{
				Key:   keys[r.IntN(len(keys))],
				Value: values[r.IntN(len(values))],
				Link:  "link",
			})
		}

		cards := Merge(rows)

		seen := map[string]bool{}
		closed := map[string]bool{}
		for k, c := range cards {
			// Keys are unique under exact comparison; "Kb" and "KB" may both appear.
			assert.False(t, seen[c.Key], "duplicate key %q", c.Key)
			seen[c.Key] = true

			// Keys equal case-insensitively are adjacent, ordered by lowercase
			// then exact key.
			folded := strings.ToLower(c.Key)
			if k > 0 {
				prev := cards[k-1].Key
				if strings.ToLower(prev) != folded {
					closed[strings.ToLower(prev)] = true
				}
				assert.Negative(t, compareKeys(prev, c.Key), "%q sorted after %q", prev, c.Key)
			}
			assert.False(t, closed[folded], "keys folding to %q are not adjacent", folded)

			require.NotEmpty(t, c.Values)
			assert.Len(t, c.Links, len(c.Values))

			unique := slices.Compact(slices.Sorted(slices.Values(c.Values)))
			assert.Len(t, unique, len(c.Values), "values of %q contain duplicates", c.Key)
		}

		// Feeding the same rows in another order yields the same cards.
		shuffled := slices.Clone(rows)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, cards, Merge(shuffled))
	}
}

func TestLoad_SourceOrderIndependent(t *testing.T) {
	a := ReaderSource{Label: "a.csv", Text: "itemkey,itemvalue,itemlink\nKB,Kilobyte,L2\nDNS,Domain Name System,\n"}
	b := ReaderSource{Label: "b.csv", Text: "itemkey,itemvalue,itemlink\nKB,Knowledge Base,L3\nKB,Kilobyte,L9\n"}

	ab, err := Load(a, b)
	require.NoError(t, err)
	ba, err := Load(b, a)
	require.NoError(t, err)

	assert.Equal(t, ab, ba)
	require.Len(t, ab, 2)
	assert.Equal(t, "DNS", ab[0].Key)
	assert.Equal(t, []string{"Kilobyte", "Knowledge Base"}, ab[1].Values)
}

func TestLoad_AllOrNothing(t *testing.T) {
	good := ReaderSource{Label: "good.csv", Text: "itemkey,itemvalue,itemlink\nKB,Kilobyte,\n"}
	bad := ReaderSource{Label: "bad.csv", Text: "itemkey,itemvalue,itemlink\nKB,,\n"}

	cards, err := Load(good, bad)
	require.ErrorIs(t, err, ErrMalformedRow)
	assert.Nil(t, cards)
}

func TestLengthsPresent(t *testing.T) {
	cards := []Card{{Key: "HTTPS"}, {Key: "IP"}, {Key: "KB"}, {Key: "DNS"}, {Key: "80"}}
	assert.Equal(t, []int{0, 2, 3, 5}, LengthsPresent(cards))
	assert.Equal(t, []int{0}, LengthsPresent(nil))
}

func TestShuffle_KeepsCards(t *testing.T) {
	cards := []Card{{Key: "A"}, {Key: "B"}, {Key: "C"}, {Key: "D"}}
	Shuffle(cards, rand.New(rand.NewPCG(7, 7)))

	keys := make([]string, len(cards))
	for i, c := range cards {
		keys[i] = c.Key
	}
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, keys)
}

func TestCard_URLs(t *testing.T) {
	c := Card{
		Key:    "TACACS",
		Values: []string{"one", "two", "three"},
		Links:  []string{"https://a.example\nhttps://b.example", "", " https://c.example \n\n"},
	}
	assert.Equal(t, []string{"https://a.example", "https://b.example", "https://c.example"}, c.URLs())
	assert.Equal(t, "one / two / three", c.Definition(" / "))
	assert.Equal(t, 6, c.KeyLength())
	assert.Equal(t, 3, len(strings.Fields(c.Definition(" "))))
}

func compareKeys(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
