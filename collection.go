package binwire

// The collection protocol is one shape for lists, maps, and sets: an 8-byte
// element count followed by the elements in iteration order, each encoded by
// a caller-supplied callback. Decoding is all-or-nothing; a failed element
// fails the whole collection and no partial result is returned.

// ReadList decodes a length-prefixed sequence via elem.
func ReadList[T any](r *Reader, elem func(*Reader) (T, error)) ([]T, error) {
	n, err := r.readCount()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, listPrealloc(r, n))
	for i := 0; i < n; i++ {
		v, err := elem(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteList encodes xs as a count prefix plus each element via elem.
func WriteList[T any](w *Writer, xs []T, elem func(*Writer, T) error) error {
	if err := w.writeCount(len(xs)); err != nil {
		return err
	}
	for _, v := range xs {
		if err := elem(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadMap decodes a length-prefixed run of key,value pairs. Duplicate keys
// follow Go map semantics: the last occurrence wins. That is a consequence of
// the container, not a wire-format guarantee.
func ReadMap[K comparable, V any](r *Reader, key func(*Reader) (K, error), val func(*Reader) (V, error)) (map[K]V, error) {
	n, err := r.readCount()
	if err != nil {
		return nil, err
	}
	out := make(map[K]V, listPrealloc(r, n))
	for i := 0; i < n; i++ {
		k, err := key(r)
		if err != nil {
			return nil, err
		}
		v, err := val(r)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// WriteMap encodes m as a count prefix plus key,value pairs in map iteration
// order. The order is not deterministic across runs; the total byte length
// is.
func WriteMap[K comparable, V any](w *Writer, m map[K]V, key func(*Writer, K) error, val func(*Writer, V) error) error {
	if err := w.writeCount(len(m)); err != nil {
		return err
	}
	for k, v := range m {
		if err := key(w, k); err != nil {
			return err
		}
		if err := val(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadSet decodes a length-prefixed run of elements into a set. Duplicates
// in the payload collapse.
func ReadSet[T comparable](r *Reader, elem func(*Reader) (T, error)) (map[T]struct{}, error) {
	n, err := r.readCount()
	if err != nil {
		return nil, err
	}
	out := make(map[T]struct{}, listPrealloc(r, n))
	for i := 0; i < n; i++ {
		v, err := elem(r)
		if err != nil {
			return nil, err
		}
		out[v] = struct{}{}
	}
	return out, nil
}

// WriteSet encodes s as a count prefix plus elements in set iteration order.
func WriteSet[T comparable](w *Writer, s map[T]struct{}, elem func(*Writer, T) error) error {
	if err := w.writeCount(len(s)); err != nil {
		return err
	}
	for v := range s {
		if err := elem(w, v); err != nil {
			return err
		}
	}
	return nil
}

// listPrealloc caps the capacity hint for variable-width collections: a
// hostile count prefix must not force a huge allocation before the per-element
// reads start failing. Each element is at least one byte, so the remaining
// length bounds any count a valid payload can carry.
func listPrealloc(r *Reader, n int) int {
	if rem := r.Remaining(); n > rem {
		return rem
	}
	return n
}
