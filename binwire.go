package binwire

import (
	"fmt"
	"unsafe"
)

// Options controls how a Reader or Writer behaves. The zero value is the safe
// default: checked bounds, copied strings, a private size cache.
type Options struct {
	// Unchecked disables bounds validation. Out-of-range access then
	// surfaces as a runtime slice-bounds panic instead of
	// ErrBufferExhausted. Only for input whose total length has already
	// been validated.
	Unchecked bool

	// UnsafeStrings makes ReadString and ReadFixedString alias the buffer
	// instead of copying; the returned string is only valid for the
	// buffer's lifetime.
	UnsafeStrings bool

	// Sizes supplies a shared fixed-size cache. Nil means the instance
	// lazily creates its own.
	Sizes *SizeCache
}

// Reader decodes bincode-convention bytes from an in-memory buffer. The only
// mutable state is the cursor and the limit; the buffer itself is never
// written. Not safe for concurrent use.
type Reader struct {
	buf       []byte
	pos       int
	limit     int
	unchecked bool
	unsafeStr bool
	sizes     *SizeCache
}

// NewReader constructs a Reader over buf. The buffer is borrowed, not copied;
// it must stay immutable and alive while the reader (and any zero-copy views
// handed out) are in use.
func NewReader(buf []byte, opts Options) *Reader {
	return &Reader{
		buf:       buf,
		limit:     len(buf),
		unchecked: opts.Unchecked,
		unsafeStr: opts.UnsafeStrings,
		sizes:     opts.Sizes,
	}
}

// Pos reports the cursor offset from the start of the buffer.
func (r *Reader) Pos() int { return r.pos }

// Remaining reports how many bytes are left before the current limit.
func (r *Reader) Remaining() int { return r.limit - r.pos }

// Len reports the current limit.
func (r *Reader) Len() int { return r.limit }

// Seek moves the cursor to an absolute offset.
func (r *Reader) Seek(pos int) error {
	if !r.unchecked && (pos < 0 || pos > r.limit) {
		return fmt.Errorf("%w: seek to %d, limit %d", ErrBufferExhausted, pos, r.limit)
	}
	r.pos = pos
	return nil
}

// Skip advances the cursor by n bytes without decoding them.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// need is the checked-mode bounds guard. It never moves the cursor, so a
// failed read leaves the reader exactly where it was.
func (r *Reader) need(n int) error {
	if r.unchecked {
		return nil
	}
	if n < 0 || n > r.limit-r.pos {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrBufferExhausted, n, r.pos, r.limit-r.pos)
	}
	return nil
}

// pushLimit narrows the readable extent to pos+n and returns the prior limit
// for the caller to restore.
func (r *Reader) pushLimit(n int) int {
	prev := r.limit
	r.limit = r.pos + n
	return prev
}

// Writer encodes bincode-convention bytes into a buffer. The default writer
// grows as needed and cannot fail; a writer built with NewWriterOver is
// capped at its region and reports ErrBufferExhausted in checked mode.
// Not safe for concurrent use.
type Writer struct {
	data      []byte
	pos       int
	fixed     bool
	unchecked bool
}

// NewWriter constructs an empty, growable Writer.
func NewWriter() *Writer { return &Writer{} }

// NewWriterOver constructs a Writer that encodes into buf in place. The
// region never grows: checked mode returns ErrBufferExhausted when a write
// would cross len(buf), unchecked mode panics on the overrunning store.
func NewWriterOver(buf []byte, opts Options) *Writer {
	return &Writer{data: buf, fixed: true, unchecked: opts.Unchecked}
}

// Pos reports how many bytes have been written.
func (w *Writer) Pos() int { return w.pos }

// Bytes returns the encoded bytes written so far. The slice aliases the
// writer's buffer and is invalidated by further writes.
func (w *Writer) Bytes() []byte { return w.data[:w.pos] }

// Reset rewinds the writer to empty, keeping the allocation.
func (w *Writer) Reset() { w.pos = 0 }

func (w *Writer) grow(n int) error {
	need := w.pos + n
	if need <= len(w.data) {
		return nil
	}
	if w.fixed {
		if w.unchecked {
			// let the store itself fault
			return nil
		}
		return fmt.Errorf("%w: write of %d bytes at offset %d, capacity %d", ErrBufferExhausted, n, w.pos, len(w.data))
	}
	if need <= cap(w.data) {
		w.data = w.data[:cap(w.data)]
		return nil
	}
	grown := make([]byte, max(2*need, 64))
	copy(grown, w.data[:w.pos])
	w.data = grown
	return nil
}

// hostLittleEndian gates the zero-copy list path: aliasing buffer bytes as
// multi-byte elements is only byte-correct on a little-endian host.
var hostLittleEndian = func() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()
