package reference

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/acrodrill/internal/core/card"
	"github.com/hay-kot/acrodrill/pkg/executil"
)

func TestOpener_OpensEachURL(t *testing.T) {
	rec := &executil.RecordingExecutor{}
	o := NewOpener(rec, "browser")

	c := card.Card{
		Key:    "TACACS",
		Values: []string{"Terminal Access Controller Access-Control System", "TACACS+"},
		Links:  []string{"https://a.example\nhttps://b.example", "https://c.example"},
	}

	n, err := o.Open(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got := rec.Recorded()
	require.Len(t, got, 3)
	for i, want := range []string{"https://a.example", "https://b.example", "https://c.example"} {
		assert.Equal(t, "browser", got[i].Cmd)
		assert.Equal(t, []string{want}, got[i].Args)
	}
}

func TestOpener_NoLinks(t *testing.T) {
	rec := &executil.RecordingExecutor{}
	o := NewOpener(rec, "")

	n, err := o.Open(context.Background(), card.Card{Key: "AC", Values: []string{"x"}, Links: []string{""}})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, rec.Recorded())
	assert.Equal(t, DefaultCommand(), o.Command())
}

func TestOpener_ContinuesAfterFailure(t *testing.T) {
	boom := errors.New("no display")
	rec := &executil.RecordingExecutor{Errors: map[string]error{"browser https://a.example": boom}}
	o := NewOpener(rec, "browser")

	n, err := o.Open(context.Background(), card.Card{Links: []string{"https://a.example\nhttps://b.example"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "open https://a.example")
	assert.Equal(t, 1, n)
	assert.Len(t, rec.Recorded(), 2)
}
