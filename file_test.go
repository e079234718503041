package binwire

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")

	w := NewWriter()
	require.NoError(t, w.WriteOptionString("persisted", true))
	require.NoError(t, WriteFile(path, w))

	r, err := ReadFile(path, Options{})
	require.NoError(t, err)
	s, present, err := r.ReadOptionString()
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, "persisted", s)
	assert.Equal(t, 0, r.Remaining())
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.bin"), Options{})
	require.Error(t, err)
}
