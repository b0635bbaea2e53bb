package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// newCmpCommand creates the "cmp" command.
func newCmpCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "cmp A B",
		Short:   "Compare two numbers, printing -1, 0 or 1",
		Example: `  lvlnum cmp 234567 234067`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseNumbers(args)
			if err != nil {
				return err
			}
			c := nums[0].Compare(nums[1])

			return emit(cmd, flags, struct {
				Compare int `json:"compare"`
			}{c}, strconv.Itoa(c))
		},
	}
}
