package binwire

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOfStringsRoundTrip(t *testing.T) {
	want := []string{"azerty", "Loling", ""}
	w := NewWriter()
	require.NoError(t, WriteList(w, want, (*Writer).WriteString))

	r := NewReader(w.Bytes(), Options{})
	got, err := ReadList(r, (*Reader).ReadString)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 0, r.Remaining())
}

func TestEmptyCollections(t *testing.T) {
	w := NewWriter()
	require.NoError(t, WriteList(w, []string(nil), (*Writer).WriteString))
	require.NoError(t, WriteMap(w, map[uint32]string(nil), (*Writer).WriteU32, (*Writer).WriteString))
	require.NoError(t, WriteSet(w, map[uint32]struct{}(nil), (*Writer).WriteU32))

	r := NewReader(w.Bytes(), Options{})
	xs, err := ReadList(r, (*Reader).ReadString)
	require.NoError(t, err)
	assert.Empty(t, xs)
	m, err := ReadMap(r, (*Reader).ReadU32, (*Reader).ReadString)
	require.NoError(t, err)
	assert.Empty(t, m)
	s, err := ReadSet(r, (*Reader).ReadU32)
	require.NoError(t, err)
	assert.Empty(t, s)
	assert.Equal(t, 0, r.Remaining())
}

func TestMapRoundTrip(t *testing.T) {
	want := map[string]uint64{"one": 1, "two": 2, "three": 3}
	w := NewWriter()
	require.NoError(t, WriteMap(w, want, (*Writer).WriteString, (*Writer).WriteU64))

	r := NewReader(w.Bytes(), Options{})
	got, err := ReadMap(r, (*Reader).ReadString, (*Reader).ReadU64)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMapDuplicateKeysLastWins(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteU64(2))
	require.NoError(t, w.WriteString("k"))
	require.NoError(t, w.WriteU32(1))
	require.NoError(t, w.WriteString("k"))
	require.NoError(t, w.WriteU32(2))

	r := NewReader(w.Bytes(), Options{})
	got, err := ReadMap(r, (*Reader).ReadString, (*Reader).ReadU32)
	require.NoError(t, err)
	assert.Equal(t, map[string]uint32{"k": 2}, got)
}

func TestSetRoundTripAndDedup(t *testing.T) {
	want := map[int32]struct{}{-1: {}, 0: {}, 7: {}}
	w := NewWriter()
	require.NoError(t, WriteSet(w, want, (*Writer).WriteI32))
	r := NewReader(w.Bytes(), Options{})
	got, err := ReadSet(r, (*Reader).ReadI32)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// duplicates in the payload collapse
	w = NewWriter()
	require.NoError(t, w.WriteU64(3))
	for i := 0; i < 3; i++ {
		require.NoError(t, w.WriteI32(5))
	}
	r = NewReader(w.Bytes(), Options{})
	got, err = ReadSet(r, (*Reader).ReadI32)
	require.NoError(t, err)
	assert.Equal(t, map[int32]struct{}{5: {}}, got)
}

func TestCollectionDecodeAllOrNothing(t *testing.T) {
	// count says 3 strings, second is truncated
	w := NewWriter()
	require.NoError(t, w.WriteU64(3))
	require.NoError(t, w.WriteString("ok"))
	require.NoError(t, w.WriteU64(100)) // length prefix far past the end

	r := NewReader(w.Bytes(), Options{})
	got, err := ReadList(r, (*Reader).ReadString)
	require.ErrorIs(t, err, ErrBufferExhausted)
	assert.Nil(t, got)
}

func TestHostileCountNoHugeAlloc(t *testing.T) {
	// 2^40 elements claimed in a 9-byte buffer must fail, not allocate
	buf := []byte{0, 0, 0, 0, 0, 1, 0, 0, 0xFF}
	r := NewReader(buf, Options{})
	_, err := ReadList(r, (*Reader).ReadU8)
	require.ErrorIs(t, err, ErrBufferExhausted)
}

func TestNestedCollections(t *testing.T) {
	want := [][]uint16{{1, 2}, {}, {3}}
	w := NewWriter()
	require.NoError(t, WriteList(w, want, (*Writer).WriteU16List))
	r := NewReader(w.Bytes(), Options{})
	got, err := ReadList(r, (*Reader).ReadU16List)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestQuickMapRoundTrip(t *testing.T) {
	cond := func(m map[uint32]string) bool {
		w := NewWriter()
		if WriteMap(w, m, (*Writer).WriteU32, (*Writer).WriteString) != nil {
			return false
		}
		r := NewReader(w.Bytes(), Options{})
		got, err := ReadMap(r, (*Reader).ReadU32, (*Reader).ReadString)
		if err != nil || len(got) != len(m) {
			return false
		}
		for k, v := range m {
			if got[k] != v {
				return false
			}
		}
		return r.Remaining() == 0
	}
	require.NoError(t, quick.Check(cond, nil))
}
