package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	workers    int
	logBackend string
	jsonLogs   bool
	base       int

	cfg Config
)

var rootCmd = &cobra.Command{
	Use:   "fallible",
	Short: "Parse integers from stdin, dropping the lines that fail",
	Long: `fallible reads one value per line from stdin and parses it as an integer.
Lines that fail to parse are dropped from the output and reported as warnings.
With more than one worker the parsing runs concurrently; output order is kept.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("workers") {
			loaded.Workers = workers
		}
		if flags.Changed("log-backend") {
			loaded.Log.Backend = logBackend
		}
		if flags.Changed("json") {
			loaded.Log.JSON = jsonLogs
		}
		if flags.Changed("base") {
			loaded.Base = base
		}

		cfg = loaded
		return cfg.Validate()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 1, "Number of parsing workers")
	rootCmd.PersistentFlags().StringVar(&logBackend, "log-backend", "slog", "Diagnostic log backend: slog, logrus or kit (kit logs to stdout)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "Write diagnostics as JSON")
	rootCmd.PersistentFlags().IntVar(&base, "base", 10, "Numeric base of the input")

	rootCmd.AddCommand(filterCmd, splitCmd)
}
