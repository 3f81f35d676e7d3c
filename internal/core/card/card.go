// Package card loads acronym flashcards from CSV sources and merges rows that
// share a key into a single canonical card.
package card

import (
	"strings"
	"unicode/utf8"
)

// RawRow is one CSV record as parsed, before merging. Rows are not unique by key.
type RawRow struct {
	Key   string
	Value string
	Link  string
}

// Card is a canonical acronym entry with one or more definitions.
//
// Values and Links are parallel: Links[i] is the reference for Values[i].
// A single link entry may hold several newline separated URLs.
type Card struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
	Links  []string `json:"links"`
}

// KeyLength returns the number of characters in the card key.
func (c Card) KeyLength() int {
	return utf8.RuneCountInString(c.Key)
}

// Definition joins all values for display.
func (c Card) Definition(sep string) string {
	return strings.Join(c.Values, sep)
}

// URLs flattens every link entry into individual URLs. Link entries are split
// on newlines and blank entries are dropped.
func (c Card) URLs() []string {
	var urls []string
	for _, link := range c.Links {
		for _, u := range strings.Split(link, "\n") {
			u = strings.TrimSpace(u)
			if u != "" {
				urls = append(urls, u)
			}
		}
	}
	return urls
}

// HasValue reports whether v is already one of the card's values (exact match).
func (c Card) HasValue(v string) bool {
	for _, existing := range c.Values {
		if existing == v {
			return true
		}
	}
	return false
}

func (c Card) clone() Card {
	return Card{
		Key:    c.Key,
		Values: append([]string(nil), c.Values...),
		Links:  append([]string(nil), c.Links...),
	}
}

// Clone returns deep copies of cards so callers cannot mutate a loaded set.
func Clone(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = c.clone()
	}
	return out
}
