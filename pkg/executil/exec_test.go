package executil

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealExecutor_Start(t *testing.T) {
	exec := &RealExecutor{}

	require.NoError(t, exec.Start(context.Background(), "true"))

	err := exec.Start(context.Background(), "nonexistent-command-12345")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start nonexistent-command-12345")
}

func TestRecordingExecutor(t *testing.T) {
	t.Run("records commands", func(t *testing.T) {
		exec := &RecordingExecutor{}
		ctx := context.Background()

		_ = exec.Start(ctx, "xdg-open", "https://a.example")
		_ = exec.Start(ctx, "xdg-open", "https://b.example")

		got := exec.Recorded()
		require.Len(t, got, 2)
		assert.Equal(t, RecordedCommand{Cmd: "xdg-open", Args: []string{"https://a.example"}}, got[0])
		assert.Equal(t, []string{"https://b.example"}, got[1].Args)
	})

	t.Run("per-argument error wins", func(t *testing.T) {
		boom := errors.New("boom")
		generic := errors.New("generic")
		exec := &RecordingExecutor{Errors: map[string]error{
			"open":          generic,
			"open bad-link": boom,
		}}

		assert.Equal(t, boom, exec.Start(context.Background(), "open", "bad-link"))
		assert.Equal(t, generic, exec.Start(context.Background(), "open", "other"))
	})

	t.Run("no errors configured", func(t *testing.T) {
		exec := &RecordingExecutor{}
		assert.NoError(t, exec.Start(context.Background(), "open", "x"))
	})
}
