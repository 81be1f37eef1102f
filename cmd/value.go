package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// valueCmd prints the total value of the portfolio.
type valueCmd struct {
	formatted bool
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "print the total value of the portfolio" }
func (*valueCmd) Usage() string {
	return `rebal value [-f]

  Prints the sum of shares × price over all holdings.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.formatted, "f", false, "format the value in the portfolio currency, e.g. $65,000.00")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		return fail("loading portfolio", err)
	}
	total, err := p.TotalValue()
	if err != nil {
		return fail("computing total value", err)
	}
	if c.formatted {
		fmt.Fprintln(stdout, total.String())
	} else {
		fmt.Fprintln(stdout, total.Number())
	}
	return subcommands.ExitSuccess
}
