package cli

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlnum/bignumber"
)

// parseNumbers parses every positional digit string, naming the offending
// argument on failure.
func parseNumbers(args []string) ([]*bignumber.BigNumber, error) {
	out := make([]*bignumber.BigNumber, 0, len(args))
	for i, a := range args {
		n, err := bignumber.Parse(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out = append(out, n)
	}

	return out, nil
}

// parseInt parses a signed machine integer argument.
func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, s)
	}

	return v, nil
}

// valueOutput is the JSON shape for commands producing a single number.
type valueOutput struct {
	Result *bignumber.BigNumber `json:"result"`
}
