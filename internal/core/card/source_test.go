package card

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows(t *testing.T) {
	src := ReaderSource{
		Label: "acronyms.csv",
		Text: "\xef\xbb\xbfItemKey, itemvalue ,itemlink\n" +
			"TACACS,Terminal Access Controller Access-Control System,\"https://a.example\nhttps://b.example\"\n" +
			"KB,Kilobyte,\n",
	}

	rows, err := ReadRows(src)
	require.NoError(t, err)
	assert.Equal(t, []RawRow{
		{Key: "TACACS", Value: "Terminal Access Controller Access-Control System", Link: "https://a.example\nhttps://b.example"},
		{Key: "KB", Value: "Kilobyte", Link: ""},
	}, rows)
}

func TestReadRows_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantRow int
	}{
		{name: "empty file", text: "", wantRow: 1},
		{name: "wrong header", text: "initials,meaning\nAC,Alternating Current\n", wantRow: 1},
		{name: "header out of order", text: "itemvalue,itemkey,itemlink\n", wantRow: 1},
		{name: "missing field", text: "itemkey,itemvalue,itemlink\nAC,Alternating Current,\nDC,Direct Current\n", wantRow: 3},
		{name: "empty key", text: "itemkey,itemvalue,itemlink\n,Alternating Current,\n", wantRow: 2},
		{name: "empty value", text: "itemkey,itemvalue,itemlink\nAC,,\n", wantRow: 2},
		{name: "row after multi-line link", text: "itemkey,itemvalue,itemlink\nAC,x,\"a\nb\"\nDC,,\n", wantRow: 4},
		{name: "bare quote", text: "itemkey,itemvalue,itemlink\nAC,x\"y,z\n", wantRow: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRows(ReaderSource{Label: "in.csv", Text: tt.text})

			var rowErr *MalformedRowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, "in.csv", rowErr.Source)
			assert.Equal(t, tt.wantRow, rowErr.Row)
			assert.ErrorIs(t, err, ErrMalformedRow)
		})
	}
}

func TestReadRows_SourceUnavailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, err := ReadRows(FileSource{Path: path})

	var srcErr *SourceUnavailableError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, path, srcErr.Source)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ports.csv")
	require.NoError(t, os.WriteFile(path, []byte("itemkey,itemvalue,itemlink\n22,SSH,\n443,HTTPS,\n"), 0o644))

	cards, err := Load(FileSource{Path: path})
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "22", cards[0].Key)
	assert.Equal(t, "443", cards[1].Key)
}
