package cmd

import (
	"fmt"
	"strings"

	"github.com/rawbytedev/binwire"
	"github.com/spf13/cobra"
)

// valueReader is the read surface decode needs; both binwire.Reader and the
// tracing decorator satisfy it, so --trace swaps one in transparently.
type valueReader interface {
	ReadU8() (uint8, error)
	ReadU16() (uint16, error)
	ReadU32() (uint32, error)
	ReadU64() (uint64, error)
	ReadI8() (int8, error)
	ReadI16() (int16, error)
	ReadI32() (int32, error)
	ReadI64() (int64, error)
	ReadF32() (float32, error)
	ReadF64() (float64, error)
	ReadBool() (bool, error)
	ReadString() (string, error)
	ReadChar() (rune, error)
	ReadDuration() (binwire.Duration, error)
	ReadEnum() (uint32, error)
	ReadByteSlice() ([]byte, error)
	Pos() int
	Remaining() int
}

var decodeCmd = &cobra.Command{
	Use:   "decode <file> <type>...",
	Short: "Decode a sequence of values from a binary file",
	Long: `Decode reads values of the given types, in order, from the file.

Types: u8 u16 u32 u64 i8 i16 i32 i64 f32 f64 bool string char bytes
duration enum, plus option:<type> and list:<type>.

Example:
  bindump decode payload.bin u32 option:string list:f64`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := binwire.ReadFile(args[0], binwire.Options{Unchecked: cfg.Unchecked})
		if err != nil {
			return err
		}
		if err := raw.Seek(flagOffset); err != nil {
			return fmt.Errorf("offset %d: %w", flagOffset, err)
		}
		var vr valueReader = raw
		if cfg.Trace {
			vr = binwire.NewTraceReader(raw, logger)
		}
		for _, tok := range args[1:] {
			at := vr.Pos()
			text, err := decodeValue(vr, tok)
			if err != nil {
				return fmt.Errorf("%s at offset %d: %w", tok, at, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", tok, text)
		}
		if rem := vr.Remaining(); rem > 0 {
			logger.Warn().Int("bytes", rem).Msg("trailing bytes not decoded")
		}
		return nil
	},
}

func decodeValue(vr valueReader, tok string) (string, error) {
	if elem, ok := strings.CutPrefix(tok, "option:"); ok {
		return decodeOption(vr, elem)
	}
	if elem, ok := strings.CutPrefix(tok, "list:"); ok {
		return decodeList(vr, elem)
	}
	switch tok {
	case "u8":
		v, err := vr.ReadU8()
		return fmt.Sprint(v), err
	case "u16":
		v, err := vr.ReadU16()
		return fmt.Sprint(v), err
	case "u32":
		v, err := vr.ReadU32()
		return fmt.Sprint(v), err
	case "u64":
		v, err := vr.ReadU64()
		return fmt.Sprint(v), err
	case "i8":
		v, err := vr.ReadI8()
		return fmt.Sprint(v), err
	case "i16":
		v, err := vr.ReadI16()
		return fmt.Sprint(v), err
	case "i32":
		v, err := vr.ReadI32()
		return fmt.Sprint(v), err
	case "i64":
		v, err := vr.ReadI64()
		return fmt.Sprint(v), err
	case "f32":
		v, err := vr.ReadF32()
		return fmt.Sprint(v), err
	case "f64":
		v, err := vr.ReadF64()
		return fmt.Sprint(v), err
	case "bool":
		v, err := vr.ReadBool()
		return fmt.Sprint(v), err
	case "string":
		v, err := vr.ReadString()
		return fmt.Sprintf("%q", v), err
	case "char":
		v, err := vr.ReadChar()
		return fmt.Sprintf("%q", v), err
	case "bytes":
		v, err := vr.ReadByteSlice()
		return fmt.Sprintf("% x", v), err
	case "duration":
		v, err := vr.ReadDuration()
		return fmt.Sprintf("%ds+%dns", v.Secs, v.Nanos), err
	case "enum":
		v, err := vr.ReadEnum()
		return fmt.Sprintf("variant %d", v), err
	default:
		return "", fmt.Errorf("unknown type %q", tok)
	}
}

func decodeOption(vr valueReader, elem string) (string, error) {
	tag, err := vr.ReadU8()
	if err != nil {
		return "", err
	}
	switch {
	case tag == 0:
		return "none", nil
	case tag == 1 || cfg.Unchecked:
		text, err := decodeValue(vr, elem)
		if err != nil {
			return "", err
		}
		return "some " + text, nil
	default:
		return "", fmt.Errorf("%w: byte 0x%02x", binwire.ErrInvalidTag, tag)
	}
}

func decodeList(vr valueReader, elem string) (string, error) {
	n, err := vr.ReadU64()
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, min(n, 64))
	for i := uint64(0); i < n; i++ {
		text, err := decodeValue(vr, elem)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return "[" + strings.Join(parts, " ") + "]", nil
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
