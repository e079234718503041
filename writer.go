package binwire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// writeCount writes an 8-byte little-endian length/count prefix.
func (w *Writer) writeCount(n int) error {
	return w.WriteU64(uint64(n))
}

// putU64At backpatches a little-endian u64 into already-written bytes.
func putU64At(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}

// WriteU8 writes one unsigned byte.
func (w *Writer) WriteU8(v uint8) error {
	if err := w.grow(1); err != nil {
		return err
	}
	w.data[w.pos] = v
	w.pos++
	return nil
}

// WriteU16 writes a little-endian u16.
func (w *Writer) WriteU16(v uint16) error {
	if err := w.grow(2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(w.data[w.pos:], v)
	w.pos += 2
	return nil
}

// WriteU32 writes a little-endian u32.
func (w *Writer) WriteU32(v uint32) error {
	if err := w.grow(4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(w.data[w.pos:], v)
	w.pos += 4
	return nil
}

// WriteU64 writes a little-endian u64.
func (w *Writer) WriteU64(v uint64) error {
	if err := w.grow(8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(w.data[w.pos:], v)
	w.pos += 8
	return nil
}

// WriteI8 writes a two's-complement i8.
func (w *Writer) WriteI8(v int8) error { return w.WriteU8(uint8(v)) }

// WriteI16 writes a little-endian two's-complement i16.
func (w *Writer) WriteI16(v int16) error { return w.WriteU16(uint16(v)) }

// WriteI32 writes a little-endian two's-complement i32.
func (w *Writer) WriteI32(v int32) error { return w.WriteU32(uint32(v)) }

// WriteI64 writes a little-endian two's-complement i64.
func (w *Writer) WriteI64(v int64) error { return w.WriteU64(uint64(v)) }

// WriteF32 writes a little-endian IEEE-754 single.
func (w *Writer) WriteF32(v float32) error { return w.WriteU32(math.Float32bits(v)) }

// WriteF64 writes a little-endian IEEE-754 double.
func (w *Writer) WriteF64(v float64) error { return w.WriteU64(math.Float64bits(v)) }

// WriteBool writes a boolean as a single 0/1 byte.
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.WriteU8(1)
	}
	return w.WriteU8(0)
}

// WriteBytes writes raw bytes with no prefix.
func (w *Writer) WriteBytes(b []byte) error {
	if err := w.grow(len(b)); err != nil {
		return err
	}
	copy(w.data[w.pos:w.pos+len(b)], b)
	w.pos += len(b)
	return nil
}

// WriteByteSlice writes an 8-byte byte-length prefix followed by b.
func (w *Writer) WriteByteSlice(b []byte) error {
	if err := w.writeCount(len(b)); err != nil {
		return err
	}
	return w.WriteBytes(b)
}

// WriteString writes an 8-byte byte-length prefix followed by the UTF-8
// bytes of s.
func (w *Writer) WriteString(s string) error {
	if err := w.writeCount(len(s)); err != nil {
		return err
	}
	if err := w.grow(len(s)); err != nil {
		return err
	}
	copy(w.data[w.pos:w.pos+len(s)], s)
	w.pos += len(s)
	return nil
}

// WriteFixedString writes s into an n-byte slot with no prefix, padding with
// NUL bytes. A value longer than n is an error, not a truncation.
func (w *Writer) WriteFixedString(s string, n int) error {
	if len(s) > n {
		return fmt.Errorf("%w: %d bytes into %d", ErrStringTooLong, len(s), n)
	}
	if err := w.grow(n); err != nil {
		return err
	}
	copy(w.data[w.pos:w.pos+n], s)
	for i := w.pos + len(s); i < w.pos+n; i++ {
		w.data[i] = 0
	}
	w.pos += n
	return nil
}

// WriteChar writes a Unicode scalar value as a 4-byte little-endian code
// point, rejecting surrogates and out-of-range runes.
func (w *Writer) WriteChar(c rune) error {
	v := uint32(c)
	if c < 0 || v > maxScalar || (v >= surrogateMin && v <= surrogateMax) {
		return fmt.Errorf("%w: code point 0x%X", ErrInvalidChar, v)
	}
	return w.WriteU32(v)
}

// WriteDuration writes the seconds and nanosecond pair, rejecting a
// remainder of a second or more.
func (w *Writer) WriteDuration(d Duration) error {
	if d.Nanos >= nanosPerSecond {
		return fmt.Errorf("%w: %d nanoseconds", ErrInvalidDuration, d.Nanos)
	}
	if err := w.WriteI64(d.Secs); err != nil {
		return err
	}
	return w.WriteU32(d.Nanos)
}

// WriteEnum writes a 4-byte little-endian variant discriminant.
func (w *Writer) WriteEnum(v uint32) error {
	return w.WriteU32(v)
}
