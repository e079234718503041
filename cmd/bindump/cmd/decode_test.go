package cmd

import (
	"testing"

	"github.com/rawbytedev/binwire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValueScalars(t *testing.T) {
	w := binwire.NewWriter()
	require.NoError(t, w.WriteU32(42))
	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteString("ab"))
	require.NoError(t, w.WriteChar('x'))
	require.NoError(t, w.WriteDuration(binwire.Duration{Secs: 2, Nanos: 5}))
	require.NoError(t, w.WriteEnum(3))

	r := binwire.NewReader(w.Bytes(), binwire.Options{})
	for _, tc := range []struct {
		tok  string
		want string
	}{
		{"u32", "42"},
		{"bool", "true"},
		{"string", `"ab"`},
		{"char", `'x'`},
		{"duration", "2s+5ns"},
		{"enum", "variant 3"},
	} {
		got, err := decodeValue(r, tc.tok)
		require.NoError(t, err, tc.tok)
		assert.Equal(t, tc.want, got, tc.tok)
	}
	assert.Equal(t, 0, r.Remaining())
}

func TestDecodeValueComposites(t *testing.T) {
	w := binwire.NewWriter()
	require.NoError(t, w.WriteOptionU32(7, true))
	require.NoError(t, w.WriteOptionU32(0, false))
	require.NoError(t, w.WriteU8List([]uint8{1, 2, 3}))

	r := binwire.NewReader(w.Bytes(), binwire.Options{})
	got, err := decodeValue(r, "option:u32")
	require.NoError(t, err)
	assert.Equal(t, "some 7", got)
	got, err = decodeValue(r, "option:u32")
	require.NoError(t, err)
	assert.Equal(t, "none", got)
	got, err = decodeValue(r, "list:u8")
	require.NoError(t, err)
	assert.Equal(t, "[1 2 3]", got)
}

func TestDecodeValueUnknownType(t *testing.T) {
	r := binwire.NewReader(nil, binwire.Options{})
	_, err := decodeValue(r, "blob")
	require.Error(t, err)
}

func TestDecodeOptionInvalidTag(t *testing.T) {
	r := binwire.NewReader([]byte{0x02}, binwire.Options{})
	_, err := decodeValue(r, "option:u8")
	require.ErrorIs(t, err, binwire.ErrInvalidTag)
}
