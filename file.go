package binwire

import "os"

// ReadFile loads path fully into memory and returns a Reader over its
// contents. Loading happens here, before any decoding; the codec itself
// never touches the file system.
func ReadFile(path string, opts Options) (*Reader, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewReader(buf, opts), nil
}

// WriteFile writes a writer's encoded bytes to path.
func WriteFile(path string, w *Writer) error {
	return os.WriteFile(path, w.Bytes(), 0o644)
}
