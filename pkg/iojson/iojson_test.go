package iojson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLine(&buf, map[string]int{"correct": 2}))
	require.NoError(t, WriteLine(&buf, []string{"KB"}))

	assert.Equal(t, "{\"correct\":2}\n[\"KB\"]\n", buf.String())
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteError(&buf, "lookup miss", map[string]any{"key": "zz"}))

	assert.JSONEq(t, `{"message":"lookup miss","data":{"key":"zz"}}`, buf.String())
}

func TestWrite_UnsupportedValue(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, make(chan int))
	require.Error(t, err)
	assert.Empty(t, buf.String())
}
