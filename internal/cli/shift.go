package cli

import (
	"github.com/spf13/cobra"
)

// newShiftCommand creates the "shift" command.
func newShiftCommand(flags *rootFlags) *cobra.Command {
	var right bool

	cmd := &cobra.Command{
		Use:   "shift A N",
		Short: "Multiply (or with --right, integer-divide) A by 10^N",
		Long: `Shift A by N decimal places. N may be negative, which reverses the
direction. Shifting right by at least the number of digits yields 0.`,
		Example: `  lvlnum shift 5 3
  lvlnum shift 147888 3 --right
  lvlnum shift -- 5000 -2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseNumbers(args[:1])
			if err != nil {
				return err
			}
			n, err := parseInt("N", args[1])
			if err != nil {
				return err
			}
			v := nums[0]
			if right {
				v.ShiftRight(n)
			} else {
				v.ShiftLeft(n)
			}
			flags.logger.Debug("shift", "n", n, "right", right, "digits", v.Length())

			return emit(cmd, flags, valueOutput{Result: v}, v.String())
		},
	}
	cmd.Flags().BoolVar(&right, "right", false, "Shift right (divide) instead of left")

	return cmd
}
