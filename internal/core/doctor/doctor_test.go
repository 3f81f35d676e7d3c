package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/acrodrill/internal/core/config"
)

func stubTools(t *testing.T, found bool, clipboard bool) {
	t.Helper()
	origLook, origClip := lookPathFunc, clipboardUnsupported
	t.Cleanup(func() {
		lookPathFunc = origLook
		clipboardUnsupported = origClip
	})

	lookPathFunc = func(file string) (string, error) {
		if !found {
			return "", &exec.Error{Name: file, Err: fmt.Errorf("not found")}
		}
		return "/usr/bin/" + file, nil
	}
	clipboardUnsupported = func() bool { return !clipboard }
}

func TestToolsCheck(t *testing.T) {
	t.Run("all present", func(t *testing.T) {
		stubTools(t, true, true)

		result := NewToolsCheck("xdg-open").Run(context.Background())

		assert.Equal(t, "Tools", result.Name)
		require.Len(t, result.Items, 2)
		assert.Equal(t, CheckItem{Label: "xdg-open", Status: StatusPass, Detail: "/usr/bin/xdg-open"}, result.Items[0])
		assert.Equal(t, StatusPass, result.Items[1].Status)
	})

	t.Run("missing tools only warn", func(t *testing.T) {
		stubTools(t, false, false)

		result := NewToolsCheck("open").Run(context.Background())

		require.Len(t, result.Items, 2)
		assert.Equal(t, StatusWarn, result.Items[0].Status)
		assert.Equal(t, StatusWarn, result.Items[1].Status)
	})
}

func TestConfigCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	result := NewConfigCheck(path).Run(context.Background())
	assert.Equal(t, StatusWarn, result.Items[0].Status)

	require.NoError(t, os.WriteFile(path, []byte("order: sorted\n"), 0o644))
	result = NewConfigCheck(path).Run(context.Background())
	assert.Equal(t, StatusPass, result.Items[0].Status)

	result = NewConfigCheck(dir).Run(context.Background())
	assert.Equal(t, StatusFail, result.Items[0].Status)
}

func TestSourcesCheck(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "decks"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "decks", "a.csv"), []byte("itemkey,itemvalue,itemlink\nAC,Alternating Current,\nDC,Direct Current,\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "decks", "b.csv"), []byte("key,value\n"), 0o644))

	check := NewSourcesCheck([]config.Source{
		{Name: "all", Path: "decks/*.csv"},
		{Name: "missing", Path: "missing.csv"},
		{Name: "off", Path: "off.csv", Enabled: config.BoolPtr(false)},
	}, dir)

	results := RunAll(context.Background(), []Check{check})
	require.Len(t, results, 1)

	items := results[0].Items
	require.Len(t, items, 4)
	assert.Equal(t, StatusPass, items[0].Status)
	assert.Equal(t, "2 rows", items[0].Detail)
	assert.Equal(t, StatusFail, items[1].Status, "bad header")
	assert.Equal(t, StatusFail, items[2].Status, "missing file")
	assert.Equal(t, CheckItem{Label: "off", Status: StatusPass, Detail: "disabled"}, items[3])

	passed, warned, failed := Summary(results)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 0, warned)
	assert.Equal(t, 2, failed)
}

func TestSourcesCheck_NoneConfigured(t *testing.T) {
	result := NewSourcesCheck(nil, "").Run(context.Background())
	require.Len(t, result.Items, 1)
	assert.Equal(t, StatusFail, result.Items[0].Status)
}
