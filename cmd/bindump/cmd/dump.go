package cmd

import (
	"fmt"
	"os"

	"github.com/rawbytedev/binwire"
	"github.com/rawbytedev/binwire/internal/hexdump"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Hex-dump a binary file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := binwire.ReadFile(args[0], binwire.Options{Unchecked: cfg.Unchecked})
		if err != nil {
			return err
		}
		if err := r.Seek(flagOffset); err != nil {
			return fmt.Errorf("offset %d: %w", flagOffset, err)
		}
		data, err := r.ReadBytes(r.Remaining())
		if err != nil {
			return err
		}
		logger.Info().Str("file", args[0]).Int("bytes", len(data)).Msg("dumping")
		return hexdump.Dump(os.Stdout, data, flagOffset, cfg.Width)
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
