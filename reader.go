package binwire

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// readCount reads an 8-byte little-endian length/count prefix. Checked mode
// additionally rejects counts that cannot fit the platform int, since such a
// prefix can never describe an in-memory payload.
func (r *Reader) readCount() (int, error) {
	v, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	if !r.unchecked && v > uint64(maxInt) {
		return 0, fmt.Errorf("%w: length prefix %d overflows int", ErrBufferExhausted, v)
	}
	return int(v), nil
}

const maxInt = int(^uint(0) >> 1)

// ReadU8 reads one unsigned byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// ReadU16 reads a little-endian u16.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadU32 reads a little-endian u32.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadU64 reads a little-endian u64.
func (r *Reader) ReadU64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

// ReadI8 reads a two's-complement i8.
func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

// ReadI16 reads a little-endian two's-complement i16.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

// ReadI32 reads a little-endian two's-complement i32.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadI64 reads a little-endian two's-complement i64.
func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

// ReadF32 reads a little-endian IEEE-754 single.
func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	return math.Float32frombits(v), err
}

// ReadF64 reads a little-endian IEEE-754 double.
func (r *Reader) ReadF64() (float64, error) {
	v, err := r.ReadU64()
	return math.Float64frombits(v), err
}

// ReadBool reads one byte as a boolean. Checked mode accepts only 0 or 1;
// unchecked mode treats any nonzero byte as true.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	if r.unchecked {
		return v != 0, nil
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrInvalidBool, v, r.pos-1)
	}
}

// ReadBytes returns the next n bytes as a view over the buffer. The view is
// valid for the buffer's lifetime and must not be mutated.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	v := r.buf[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return v, nil
}

// ReadByteSlice reads an 8-byte length prefix followed by that many raw
// bytes, returned as a view.
func (r *Reader) ReadByteSlice() ([]byte, error) {
	n, err := r.readCount()
	if err != nil {
		return nil, err
	}
	return r.ReadBytes(n)
}

// ReadString reads an 8-byte byte-length prefix followed by UTF-8 payload.
func (r *Reader) ReadString() (string, error) {
	n, err := r.readCount()
	if err != nil {
		return "", err
	}
	return r.readStringBytes(n)
}

// ReadFixedString reads exactly n UTF-8 bytes with no prefix.
func (r *Reader) ReadFixedString(n int) (string, error) {
	return r.readStringBytes(n)
}

// ReadFixedStringClean reads exactly n bytes and strips trailing NUL padding,
// the convention for fixed-width string fields shorter than their slot.
func (r *Reader) ReadFixedStringClean(n int) (string, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end]), nil
}

func (r *Reader) readStringBytes(n int) (string, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", nil
	}
	if r.unsafeStr {
		return unsafe.String(&b[0], len(b)), nil
	}
	return string(b), nil
}

// ReadChar reads a 4-byte little-endian Unicode scalar value. Surrogate code
// points and values above 0x10FFFF are rejected.
func (r *Reader) ReadChar() (rune, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	if v > maxScalar || (v >= surrogateMin && v <= surrogateMax) {
		return 0, fmt.Errorf("%w: code point 0x%X", ErrInvalidChar, v)
	}
	return rune(v), nil
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	maxScalar    = 0x10FFFF
)

// ReadDuration reads an 8-byte signed seconds count plus a 4-byte unsigned
// nanosecond remainder, which must be below one second.
func (r *Reader) ReadDuration() (Duration, error) {
	secs, err := r.ReadI64()
	if err != nil {
		return Duration{}, err
	}
	nanos, err := r.ReadU32()
	if err != nil {
		return Duration{}, err
	}
	if nanos >= nanosPerSecond {
		return Duration{}, fmt.Errorf("%w: %d nanoseconds", ErrInvalidDuration, nanos)
	}
	return Duration{Secs: secs, Nanos: nanos}, nil
}

// ReadEnum reads a 4-byte little-endian variant discriminant.
func (r *Reader) ReadEnum() (uint32, error) {
	return r.ReadU32()
}
