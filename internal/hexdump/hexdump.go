// Package hexdump renders byte buffers as offset/hex/ASCII rows for the
// bindump CLI.
package hexdump

import (
	"fmt"
	"io"
	"strings"
)

// DefaultWidth is the bytes-per-row used when the caller passes no width.
const DefaultWidth = 16

// Dump writes data to out as rows of "offset  hex bytes  |ascii|". start
// offsets the printed addresses without skipping data; width is clamped to
// DefaultWidth when non-positive.
func Dump(out io.Writer, data []byte, start, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	for off := 0; off < len(data); off += width {
		row := data[off:min(off+width, len(data))]
		var hexCol strings.Builder
		var asciiCol strings.Builder
		for i := 0; i < width; i++ {
			if i < len(row) {
				fmt.Fprintf(&hexCol, "%02x ", row[i])
				asciiCol.WriteByte(printable(row[i]))
			} else {
				hexCol.WriteString("   ")
			}
		}
		if _, err := fmt.Fprintf(out, "%08x  %s |%s|\n", start+off, hexCol.String(), asciiCol.String()); err != nil {
			return err
		}
	}
	return nil
}

func printable(b byte) byte {
	if b >= 0x20 && b < 0x7F {
		return b
	}
	return '.'
}
