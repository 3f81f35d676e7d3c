package card

import "strings"

// Field names a part of a card in a WhitespaceIssue.
type Field string

const (
	FieldKey   Field = "key"
	FieldValue Field = "value"
	FieldLink  Field = "link"
)

// WhitespaceIssue is a key, value or link that ends in a space.
// Index is the position within Values or Links and is 0 for keys.
type WhitespaceIssue struct {
	Key   string `json:"key"`
	Field Field  `json:"field"`
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// FindDuplicateKeys returns cards that merged more than one value.
func FindDuplicateKeys(cards []Card) []Card {
	var dups []Card
	for _, c := range cards {
		if len(c.Values) > 1 {
			dups = append(dups, c.clone())
		}
	}
	return dups
}

// FindTrailingWhitespace reports every key, value or link ending in a space.
func FindTrailingWhitespace(cards []Card) []WhitespaceIssue {
	var issues []WhitespaceIssue
	for _, c := range cards {
		if trailingSpace(c.Key) {
			issues = append(issues, WhitespaceIssue{Key: c.Key, Field: FieldKey, Text: c.Key})
		}
		for i, v := range c.Values {
			if trailingSpace(v) {
				issues = append(issues, WhitespaceIssue{Key: c.Key, Field: FieldValue, Index: i, Text: v})
			}
		}
		for i, l := range c.Links {
			if trailingSpace(l) {
				issues = append(issues, WhitespaceIssue{Key: c.Key, Field: FieldLink, Index: i, Text: l})
			}
		}
	}
	return issues
}

func trailingSpace(s string) bool {
	return strings.HasSuffix(s, " ")
}
