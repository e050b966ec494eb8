package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/lzt/internal/logger"
)

var (
	// Global flags
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "lztctl",
	Short: "Exercise and measure the lzt containers",
	Long: `lztctl drives the lzt containers from the command line. It measures
the growth behaviour of the growable buffer and replays YAML operation
scripts against vectors, strings and lists.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

// initLogging enables the logger on w when --verbose is set. --json
// switches the records to JSON as well.
func initLogging(w io.Writer) {
	logger.Init(logger.Options{
		Enabled: verbose,
		Output:  w,
		Level:   slog.LevelDebug,
		JSON:    jsonOut,
	})
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
