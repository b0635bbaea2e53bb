package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlnum/bignumber"
)

// newAddCommand creates the "add" command.
func newAddCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add A B [C...]",
		Short: "Add two or more numbers",
		Example: `  lvlnum add 99999 1
  lvlnum add 7502759287502846283 2871907985729758402 --json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseNumbers(args)
			if err != nil {
				return err
			}
			sum := bignumber.Sum(nums...)
			flags.logger.Debug("add", "operands", len(nums), "digits", sum.Length())

			return emit(cmd, flags, valueOutput{Result: sum}, sum.String())
		},
	}
}
