package hexdump

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpRow(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Dump(&out, []byte("ab\x00"), 0, 4))
	assert.Equal(t, "00000000  61 62 00     |ab.|\n", out.String())
}

func TestDumpMultipleRows(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Dump(&out, make([]byte, 20), 0x10, 16))
	lines := bytes.Split(bytes.TrimRight(out.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 2)
	assert.True(t, bytes.HasPrefix(lines[0], []byte("00000010  ")))
	assert.True(t, bytes.HasPrefix(lines[1], []byte("00000020  ")))
}

func TestDumpEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Dump(&out, nil, 0, 0))
	assert.Empty(t, out.String())
}
