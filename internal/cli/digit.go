package cli

import (
	"github.com/spf13/cobra"
)

// newDigitCommand creates the "digit" command.
func newDigitCommand(flags *rootFlags) *cobra.Command {
	var pos int

	cmd := &cobra.Command{
		Use:   "digit A D",
		Short: "Add the single digit D to A, or set a digit with --set",
		Long: `Add a single digit (0-9) to A with carry propagation.

With --set POS the digit at position POS (0 = ones digit) is overwritten
instead.`,
		Example: `  lvlnum digit 1999 1
  lvlnum digit 1999 1 --set 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseNumbers(args[:1])
			if err != nil {
				return err
			}
			d, err := parseInt("D", args[1])
			if err != nil {
				return err
			}
			v := nums[0]
			if cmd.Flags().Changed("set") {
				err = v.SetDigitAt(pos, d)
			} else {
				err = v.AddDigit(d)
			}
			if err != nil {
				return err
			}

			return emit(cmd, flags, valueOutput{Result: v}, v.String())
		},
	}
	cmd.Flags().IntVar(&pos, "set", 0, "Overwrite the digit at this position instead of adding")

	return cmd
}
