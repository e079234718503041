package binwire

import "fmt"

const (
	tagNone = 0
	tagSome = 1
)

// readTag reads an option tag byte. Checked mode rejects anything outside
// {0,1}; unchecked mode mirrors ReadBool and treats nonzero as present.
func (r *Reader) readTag() (bool, error) {
	v, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	if r.unchecked {
		return v != 0, nil
	}
	switch v {
	case tagNone:
		return false, nil
	case tagSome:
		return true, nil
	default:
		return false, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrInvalidTag, v, r.pos-1)
	}
}

// ReadOption decodes a tagged optional: a 0 tag yields (zero, false, nil)
// without touching elem; a 1 tag yields elem's result and true.
func ReadOption[T any](r *Reader, elem func(*Reader) (T, error)) (T, bool, error) {
	var zero T
	present, err := r.readTag()
	if err != nil || !present {
		return zero, false, err
	}
	v, err := elem(r)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// WriteOption encodes a tagged optional: tag byte, then the payload via elem
// only when present.
func WriteOption[T any](w *Writer, v T, present bool, elem func(*Writer, T) error) error {
	if !present {
		return w.WriteU8(tagNone)
	}
	if err := w.WriteU8(tagSome); err != nil {
		return err
	}
	return elem(w, v)
}

// ReadOptionBool is ReadOption specialized for bool payloads.
func (r *Reader) ReadOptionBool() (bool, bool, error) {
	return ReadOption(r, (*Reader).ReadBool)
}

// ReadOptionU32 is ReadOption specialized for u32 payloads.
func (r *Reader) ReadOptionU32() (uint32, bool, error) {
	return ReadOption(r, (*Reader).ReadU32)
}

// ReadOptionString is ReadOption specialized for string payloads.
func (r *Reader) ReadOptionString() (string, bool, error) {
	return ReadOption(r, (*Reader).ReadString)
}

// WriteOptionBool writes an optional bool.
func (w *Writer) WriteOptionBool(v bool, present bool) error {
	return WriteOption(w, v, present, (*Writer).WriteBool)
}

// WriteOptionU32 writes an optional u32.
func (w *Writer) WriteOptionU32(v uint32, present bool) error {
	return WriteOption(w, v, present, (*Writer).WriteU32)
}

// WriteOptionString writes an optional string.
func (w *Writer) WriteOptionString(v string, present bool) error {
	return WriteOption(w, v, present, (*Writer).WriteString)
}
