package binwire

import (
	"fmt"
	"reflect"
	"sync"
)

// Record is the capability pair a user-defined type implements to embed
// itself in a stream. EncodeBin must write exactly the bytes DecodeBin
// consumes, and must be deterministic in length for a given type when the
// type is used fixed-style.
type Record interface {
	EncodeBin(*Writer) error
	DecodeBin(*Reader) error
}

// SizeCache memoizes the measured byte width of fixed-style record types.
// A type is measured once, by encoding a throwaway zero instance with a
// scratch writer; the protocol never re-measures per instance. A record type
// whose encoded length varies between instances is a caller contract
// violation that surfaces later as ErrSizeMismatch.
//
// A SizeCache is safe for concurrent use and may be shared across readers
// via Options.Sizes, provided type identity is stable (it is, per process).
type SizeCache struct {
	mu    sync.RWMutex
	sizes map[reflect.Type]int
}

// NewSizeCache constructs an empty cache.
func NewSizeCache() *SizeCache {
	return &SizeCache{sizes: make(map[reflect.Type]int)}
}

// Measure returns the fixed byte width of rec's type, measuring it on first
// use.
func (c *SizeCache) Measure(rec Record) (int, error) {
	t := reflect.TypeOf(rec)
	c.mu.RLock()
	size, ok := c.sizes[t]
	c.mu.RUnlock()
	if ok {
		return size, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if size, ok := c.sizes[t]; ok {
		return size, nil
	}
	size, err := measureRecord(t)
	if err != nil {
		return 0, err
	}
	c.sizes[t] = size
	return size, nil
}

// measureRecord encodes a fresh zero instance of t and reports the byte
// count produced.
func measureRecord(t reflect.Type) (int, error) {
	var sample Record
	if t.Kind() == reflect.Pointer {
		sample = reflect.New(t.Elem()).Interface().(Record)
	} else {
		sample = reflect.Zero(t).Interface().(Record)
	}
	scratch := NewWriter()
	if err := sample.EncodeBin(scratch); err != nil {
		return 0, fmt.Errorf("%w: measuring %s: %w", ErrDecodeFailure, t, err)
	}
	return scratch.Pos(), nil
}

func (r *Reader) sizeCache() *SizeCache {
	if r.sizes == nil {
		r.sizes = NewSizeCache()
	}
	return r.sizes
}

// ReadRecord decodes a collection-style nested record: an 8-byte byte-length
// prefix, then the record bytes. The decode runs against exactly that region,
// so a record implementation that over-reads fails cleanly instead of
// consuming the parent's data; one that under-reads is a size mismatch.
func (r *Reader) ReadRecord(rec Record) error {
	n, err := r.readCount()
	if err != nil {
		return err
	}
	if err := r.need(n); err != nil {
		return err
	}
	return r.decodeWithin(rec, n)
}

// ReadFixedRecord decodes a fixed-style nested record: no prefix, byte width
// taken from the size cache (measured on first use for the type).
func (r *Reader) ReadFixedRecord(rec Record) error {
	size, err := r.sizeCache().Measure(rec)
	if err != nil {
		return err
	}
	return r.ReadFixedRecordSize(rec, size)
}

// ReadFixedRecordSize decodes a fixed-style nested record whose exact byte
// width the caller already knows, bypassing measurement.
func (r *Reader) ReadFixedRecordSize(rec Record, size int) error {
	if err := r.need(size); err != nil {
		return err
	}
	return r.decodeWithin(rec, size)
}

// decodeWithin narrows the limit to the next n bytes, runs the record's
// decode, and requires it to land exactly on the narrowed limit. The prior
// limit is restored on every exit path, so a failed nested decode never
// leaves the parent's extent corrupted.
func (r *Reader) decodeWithin(rec Record, n int) error {
	end := r.pos + n
	prev := r.pushLimit(n)
	defer func() { r.limit = prev }()

	if err := rec.DecodeBin(r); err != nil {
		return fmt.Errorf("%w: %T: %w", ErrDecodeFailure, rec, err)
	}
	if r.pos != end {
		return fmt.Errorf("%w: %T consumed %d of %d bytes", ErrSizeMismatch, rec, n-(end-r.pos), n)
	}
	return nil
}

// WriteRecord encodes a collection-style nested record: an 8-byte length
// prefix backpatched after the record's own encoding is written.
func (w *Writer) WriteRecord(rec Record) error {
	at := w.pos
	if err := w.writeCount(0); err != nil {
		return err
	}
	if err := rec.EncodeBin(w); err != nil {
		return err
	}
	putU64At(w.data[at:], uint64(w.pos-at-8))
	return nil
}

// WriteFixedRecord encodes a fixed-style nested record: the record bytes
// only, no prefix.
func (w *Writer) WriteFixedRecord(rec Record) error {
	return rec.EncodeBin(w)
}

// ReadOptionRecord decodes an optional collection-style record. It reports
// whether a value was present; rec is untouched when absent.
func (r *Reader) ReadOptionRecord(rec Record) (bool, error) {
	present, err := r.readTag()
	if err != nil || !present {
		return false, err
	}
	return true, r.ReadRecord(rec)
}

// ReadOptionFixedRecord decodes an optional fixed-style record.
func (r *Reader) ReadOptionFixedRecord(rec Record) (bool, error) {
	present, err := r.readTag()
	if err != nil || !present {
		return false, err
	}
	return true, r.ReadFixedRecord(rec)
}

// WriteOptionRecord encodes an optional collection-style record; rec may be
// nil when absent.
func (w *Writer) WriteOptionRecord(rec Record, present bool) error {
	if !present {
		return w.WriteU8(tagNone)
	}
	if err := w.WriteU8(tagSome); err != nil {
		return err
	}
	return w.WriteRecord(rec)
}

// WriteOptionFixedRecord encodes an optional fixed-style record.
func (w *Writer) WriteOptionFixedRecord(rec Record, present bool) error {
	if !present {
		return w.WriteU8(tagNone)
	}
	if err := w.WriteU8(tagSome); err != nil {
		return err
	}
	return w.WriteFixedRecord(rec)
}
