package binwire

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// scalar is the closed set of fixed-width element types eligible for
// zero-copy list views.
type scalar interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// loadScalar reinterprets an explicit little-endian load as T. Going through
// the unsigned image keeps float bit patterns intact, which a plain numeric
// conversion would not.
func loadScalar[T scalar](b []byte, width int) T {
	var v T
	switch width {
	case 1:
		*(*uint8)(unsafe.Pointer(&v)) = b[0]
	case 2:
		*(*uint16)(unsafe.Pointer(&v)) = binary.LittleEndian.Uint16(b)
	case 4:
		*(*uint32)(unsafe.Pointer(&v)) = binary.LittleEndian.Uint32(b)
	case 8:
		*(*uint64)(unsafe.Pointer(&v)) = binary.LittleEndian.Uint64(b)
	}
	return v
}

func storeScalar[T scalar](b []byte, v T, width int) {
	switch width {
	case 1:
		b[0] = *(*uint8)(unsafe.Pointer(&v))
	case 2:
		binary.LittleEndian.PutUint16(b, *(*uint16)(unsafe.Pointer(&v)))
	case 4:
		binary.LittleEndian.PutUint32(b, *(*uint32)(unsafe.Pointer(&v)))
	case 8:
		binary.LittleEndian.PutUint64(b, *(*uint64)(unsafe.Pointer(&v)))
	}
}

// readScalarList reads an 8-byte count then count elements of width W with a
// single whole-run bounds check. When the current position is W-aligned in
// memory (and the host is little-endian) the result is a view aliasing the
// buffer; otherwise each element is decoded individually.
func readScalarList[T scalar](r *Reader) ([]T, error) {
	width := int(unsafe.Sizeof(*new(T)))
	n, err := r.readCount()
	if err != nil {
		return nil, err
	}
	if !r.unchecked && n > (maxInt/width) {
		return nil, fmt.Errorf("%w: %d elements of width %d", ErrBufferExhausted, n, width)
	}
	byteLen := n * width
	if err := r.need(byteLen); err != nil {
		return nil, err
	}
	if n == 0 {
		return []T{}, nil
	}
	// The view path needs the whole run in memory even in unchecked mode:
	// unsafe.Slice would alias out-of-bounds memory without a fault,
	// where the per-element loads below panic the way every other
	// unchecked overrun does.
	fits := byteLen <= len(r.buf)-r.pos
	base := &r.buf[r.pos]
	if fits && hostLittleEndian && uintptr(unsafe.Pointer(base))%uintptr(width) == 0 {
		view := unsafe.Slice((*T)(unsafe.Pointer(base)), n)
		r.pos += byteLen
		return view, nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = loadScalar[T](r.buf[r.pos:r.pos+width], width)
		r.pos += width
	}
	return out, nil
}

// writeScalarList writes an 8-byte count then each element little-endian.
// The write side has no zero-copy shortcut; the destination is being grown
// anyway.
func writeScalarList[T scalar](w *Writer, xs []T) error {
	width := int(unsafe.Sizeof(*new(T)))
	if err := w.writeCount(len(xs)); err != nil {
		return err
	}
	if err := w.grow(len(xs) * width); err != nil {
		return err
	}
	for _, v := range xs {
		storeScalar(w.data[w.pos:w.pos+width], v, width)
		w.pos += width
	}
	return nil
}

// ReadU8List reads a length-prefixed list of u8. The result always aliases
// the buffer (byte views have no alignment requirement).
func (r *Reader) ReadU8List() ([]uint8, error) { return readScalarList[uint8](r) }

// ReadU16List reads a length-prefixed list of u16, zero-copy when aligned.
func (r *Reader) ReadU16List() ([]uint16, error) { return readScalarList[uint16](r) }

// ReadU32List reads a length-prefixed list of u32, zero-copy when aligned.
func (r *Reader) ReadU32List() ([]uint32, error) { return readScalarList[uint32](r) }

// ReadU64List reads a length-prefixed list of u64, zero-copy when aligned.
func (r *Reader) ReadU64List() ([]uint64, error) { return readScalarList[uint64](r) }

// ReadI8List reads a length-prefixed list of i8.
func (r *Reader) ReadI8List() ([]int8, error) { return readScalarList[int8](r) }

// ReadI16List reads a length-prefixed list of i16, zero-copy when aligned.
func (r *Reader) ReadI16List() ([]int16, error) { return readScalarList[int16](r) }

// ReadI32List reads a length-prefixed list of i32, zero-copy when aligned.
func (r *Reader) ReadI32List() ([]int32, error) { return readScalarList[int32](r) }

// ReadI64List reads a length-prefixed list of i64, zero-copy when aligned.
func (r *Reader) ReadI64List() ([]int64, error) { return readScalarList[int64](r) }

// ReadF32List reads a length-prefixed list of f32, zero-copy when aligned.
func (r *Reader) ReadF32List() ([]float32, error) { return readScalarList[float32](r) }

// ReadF64List reads a length-prefixed list of f64, zero-copy when aligned.
func (r *Reader) ReadF64List() ([]float64, error) { return readScalarList[float64](r) }

// WriteU8List writes a length-prefixed list of u8.
func (w *Writer) WriteU8List(xs []uint8) error { return writeScalarList(w, xs) }

// WriteU16List writes a length-prefixed list of u16.
func (w *Writer) WriteU16List(xs []uint16) error { return writeScalarList(w, xs) }

// WriteU32List writes a length-prefixed list of u32.
func (w *Writer) WriteU32List(xs []uint32) error { return writeScalarList(w, xs) }

// WriteU64List writes a length-prefixed list of u64.
func (w *Writer) WriteU64List(xs []uint64) error { return writeScalarList(w, xs) }

// WriteI8List writes a length-prefixed list of i8.
func (w *Writer) WriteI8List(xs []int8) error { return writeScalarList(w, xs) }

// WriteI16List writes a length-prefixed list of i16.
func (w *Writer) WriteI16List(xs []int16) error { return writeScalarList(w, xs) }

// WriteI32List writes a length-prefixed list of i32.
func (w *Writer) WriteI32List(xs []int32) error { return writeScalarList(w, xs) }

// WriteI64List writes a length-prefixed list of i64.
func (w *Writer) WriteI64List(xs []int64) error { return writeScalarList(w, xs) }

// WriteF32List writes a length-prefixed list of f32.
func (w *Writer) WriteF32List(xs []float32) error { return writeScalarList(w, xs) }

// WriteF64List writes a length-prefixed list of f64.
func (w *Writer) WriteF64List(xs []float64) error { return writeScalarList(w, xs) }
