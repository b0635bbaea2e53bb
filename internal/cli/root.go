// Package cli implements the cobra command tree for lvlnum.
//
// Each subcommand (add, shift, cmp, digit, run) lives in its own file and
// is registered by NewRootCommand. Global flags select JSON output and the
// slog level used for diagnostics on stderr.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// Version is the binary version shown by --version; set from main.
var Version = "dev"

// rootFlags holds the persistent flag values shared by every subcommand.
type rootFlags struct {
	json     bool
	logLevel string
	logger   *slog.Logger
}

// NewRootCommand builds the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "lvlnum",
		Short: "Arbitrary-precision non-negative integer calculator",
		Long: `lvlnum performs exact arithmetic on non-negative integers of any length.

Numbers are given as plain decimal digit strings. Leading zeros are accepted
and stripped; signs, spaces and other characters are rejected.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			flags.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flags.json, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newAddCommand(flags))
	rootCmd.AddCommand(newShiftCommand(flags))
	rootCmd.AddCommand(newCmpCommand(flags))
	rootCmd.AddCommand(newDigitCommand(flags))
	rootCmd.AddCommand(newRunCommand(flags))

	return rootCmd
}

// Execute runs rootCmd and returns the process exit code. Errors are
// written to the command's stderr, as JSON when --json is set.
func Execute(rootCmd *cobra.Command) int {
	if err := rootCmd.Execute(); err != nil {
		asJSON, _ := rootCmd.PersistentFlags().GetBool("json")
		printError(rootCmd.ErrOrStderr(), asJSON, err)

		return 1
	}

	return 0
}

// parseLevel maps a --log-level value to a slog level.
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("invalid --log-level %q: valid values are debug, info, warn, error", s)
}

// printError writes err as text or a JSON error object.
func printError(w io.Writer, asJSON bool, err error) {
	if asJSON {
		data, _ := json.MarshalIndent(map[string]any{
			"error": map[string]any{"message": err.Error()},
		}, "", "  ")
		fmt.Fprintln(w, string(data))

		return
	}
	fmt.Fprintf(w, "Error: %s\n", err)
}

// emit writes v as indented JSON, or text otherwise.
func emit(cmd *cobra.Command, flags *rootFlags, v any, text string) error {
	out := cmd.OutOrStdout()
	if flags.json {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))

		return err
	}
	_, err := fmt.Fprintln(out, text)

	return err
}
