package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlnum/internal/script"
)

// newRunCommand creates the "run" command.
func newRunCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Evaluate a YAML batch script",
		Long: `Evaluate a YAML script of register operations and print one line per step.

The script seeds registers from "vars" and runs "steps" in order. Supported
ops: add, shiftLeft, shiftRight, addDigit, setDigit, copy, cmp, print.`,
		Example: `  lvlnum run steps.yaml
  lvlnum run steps.yaml --json --log-level debug`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.LoadFile(args[0])
			if err != nil {
				return err
			}
			flags.logger.Info("running script", "path", args[0], "steps", len(s.Steps))

			results, err := script.Run(s, script.WithLogger(flags.logger))
			if err != nil {
				return err
			}

			return emit(cmd, flags, results, formatResults(results))
		},
	}
}

// formatResults renders results one step per line.
func formatResults(results []script.Result) string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		if r.Compare != nil {
			lines = append(lines, fmt.Sprintf("%d %s %d", r.Step, r.Op, *r.Compare))

			continue
		}
		lines = append(lines, fmt.Sprintf("%d %s %s=%s", r.Step, r.Op, r.Register, r.Value))
	}

	return strings.Join(lines, "\n")
}
