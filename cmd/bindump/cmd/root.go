package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagUnchecked bool
	flagTrace     bool
	flagOffset    int

	cfg    Config
	logger zerolog.Logger
)

// rootCmd is the base command; subcommands do the actual work.
var rootCmd = &cobra.Command{
	Use:   "bindump",
	Short: "Inspect and decode bincode-convention binary files",
	Long: `bindump loads a binary file and either hex-dumps it or decodes a
sequence of bincode-convention values from it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = LoadConfig(flagConfig)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("unchecked") {
			cfg.Unchecked = flagUnchecked
		}
		if cmd.Flags().Changed("trace") {
			cfg.Trace = flagTrace
		}
		logger = initLogger(cfg.Trace)
		return nil
	},
}

// Execute runs the CLI. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initLogger(trace bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if trace {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "bindump").Logger()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "TOML config file")
	rootCmd.PersistentFlags().BoolVar(&flagUnchecked, "unchecked", false, "skip bounds checks (unsafe for untrusted input)")
	rootCmd.PersistentFlags().BoolVar(&flagTrace, "trace", false, "log every codec operation")
	rootCmd.PersistentFlags().IntVar(&flagOffset, "offset", 0, "start offset into the file")
}
