package binwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionLayout(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteOptionU32(42, true))
	assert.Equal(t, []byte{0x01, 0x2A, 0x00, 0x00, 0x00}, w.Bytes())

	w.Reset()
	require.NoError(t, w.WriteOptionU32(0, false))
	assert.Equal(t, []byte{0x00}, w.Bytes())
}

func TestOptionRoundTrip(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteOptionBool(true, true))
	require.NoError(t, w.WriteOptionBool(false, false))
	require.NoError(t, w.WriteOptionString("maybe", true))
	require.NoError(t, w.WriteOptionString("", false))

	r := NewReader(w.Bytes(), Options{})
	v, present, err := r.ReadOptionBool()
	require.NoError(t, err)
	assert.True(t, present)
	assert.True(t, v)
	_, present, err = r.ReadOptionBool()
	require.NoError(t, err)
	assert.False(t, present)
	s, present, err := r.ReadOptionString()
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, "maybe", s)
	_, present, err = r.ReadOptionString()
	require.NoError(t, err)
	assert.False(t, present)
	assert.Equal(t, 0, r.Remaining())
}

func TestInvalidTagRejected(t *testing.T) {
	r := NewReader([]byte{0x02, 0x01}, Options{})
	_, _, err := r.ReadOptionBool()
	require.ErrorIs(t, err, ErrInvalidTag)
}

func TestUncheckedTagLeniency(t *testing.T) {
	r := NewReader([]byte{0x02, 0x01}, Options{Unchecked: true})
	v, present, err := r.ReadOptionBool()
	require.NoError(t, err)
	assert.True(t, present)
	assert.True(t, v)
}

// A presence flag followed by a length-prefixed string, checked byte for byte.
func TestPresenceStringScenario(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteString("ab"))
	assert.Equal(t,
		[]byte{0x01, 0x02, 0, 0, 0, 0, 0, 0, 0x61, 0x62},
		w.Bytes())

	r := NewReader(w.Bytes(), Options{})
	flag, err := r.ReadBool()
	require.NoError(t, err)
	assert.True(t, flag)
	inner, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "ab", inner)
	assert.Equal(t, 0, r.Remaining())
}

func TestOptionGenericCallbacks(t *testing.T) {
	w := NewWriter()
	require.NoError(t, WriteOption(w, Duration{Secs: 1, Nanos: 2}, true, (*Writer).WriteDuration))
	r := NewReader(w.Bytes(), Options{})
	d, present, err := ReadOption(r, (*Reader).ReadDuration)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, Duration{Secs: 1, Nanos: 2}, d)
}
