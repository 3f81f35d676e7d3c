package card

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingSource parks Open until release is closed so a second Load can race it.
type blockingSource struct {
	opened  chan struct{}
	release chan struct{}
}

func (s blockingSource) Name() string { return "blocking.csv" }

func (s blockingSource) Open() (io.ReadCloser, error) {
	close(s.opened)
	<-s.release
	return ReaderSource{Text: "itemkey,itemvalue,itemlink\nAC,Alternating Current,\n"}.Open()
}

func TestStore_LoadReplacesWholesale(t *testing.T) {
	s := NewStore()

	_, err := s.Load(ReaderSource{Label: "a", Text: "itemkey,itemvalue,itemlink\nAC,Alternating Current,\nDC,Direct Current,\n"})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	cards, err := s.Load(ReaderSource{Label: "b", Text: "itemkey,itemvalue,itemlink\n22,SSH,\n"})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "22", s.Cards()[0].Key)
}

func TestStore_FailedLoadKeepsPrevious(t *testing.T) {
	s := NewStore()
	_, err := s.Load(ReaderSource{Label: "a", Text: "itemkey,itemvalue,itemlink\nAC,Alternating Current,\n"})
	require.NoError(t, err)

	_, err = s.Load(ReaderSource{Label: "bad", Text: "nope\n"})
	require.Error(t, err)

	require.Len(t, s.Cards(), 1)
	assert.Equal(t, "AC", s.Cards()[0].Key)
}

func TestStore_CardsIsACopy(t *testing.T) {
	s := NewStore()
	s.Replace([]Card{{Key: "AC", Values: []string{"Alternating Current"}, Links: []string{""}}})

	got := s.Cards()
	got[0].Values[0] = "mutated"

	assert.Equal(t, "Alternating Current", s.Cards()[0].Values[0])
}

func TestStore_RejectsConcurrentLoad(t *testing.T) {
	s := NewStore()
	src := blockingSource{opened: make(chan struct{}), release: make(chan struct{})}

	done := make(chan error, 1)
	go func() {
		_, err := s.Load(src)
		done <- err
	}()

	<-src.opened
	assert.True(t, s.Loading())

	_, err := s.Load(ReaderSource{Label: "other", Text: "itemkey,itemvalue,itemlink\n"})
	require.ErrorIs(t, err, ErrLoadInProgress)

	close(src.release)
	require.NoError(t, <-done)
	assert.False(t, s.Loading())
	assert.Equal(t, 1, s.Len())
}

func TestFindDuplicateKeys(t *testing.T) {
	cards := Merge([]RawRow{
		{Key: "KB", Value: "Kilobyte"},
		{Key: "KB", Value: "Knowledge Base"},
		{Key: "AC", Value: "Alternating Current"},
	})

	dups := FindDuplicateKeys(cards)
	require.Len(t, dups, 1)
	assert.Equal(t, "KB", dups[0].Key)
	assert.Empty(t, FindDuplicateKeys(cards[:1]))
}

func TestFindTrailingWhitespace(t *testing.T) {
	cards := []Card{
		{Key: "AC ", Values: []string{"Alternating Current"}, Links: []string{""}},
		{Key: "DC", Values: []string{"Direct", "Direct Current "}, Links: []string{"https://x.example ", ""}},
		{Key: "OK", Values: []string{"fine"}, Links: []string{"\t"}},
	}

	assert.Equal(t, []WhitespaceIssue{
		{Key: "AC ", Field: FieldKey, Index: 0, Text: "AC "},
		{Key: "DC", Field: FieldValue, Index: 1, Text: "Direct Current "},
		{Key: "DC", Field: FieldLink, Index: 0, Text: "https://x.example "},
	}, FindTrailingWhitespace(cards))
}
