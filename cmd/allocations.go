package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

// allocationsCmd prints the current allocations as JSON.
type allocationsCmd struct{}

func (*allocationsCmd) Name() string     { return "allocations" }
func (*allocationsCmd) Synopsis() string { return "print the current allocation of each holding" }
func (*allocationsCmd) Usage() string {
	return `rebal allocations

  Prints, as a JSON object, the fraction of the total value each holding
  represents, rounded to 2 decimals.
`
}

func (c *allocationsCmd) SetFlags(f *flag.FlagSet) {}

func (c *allocationsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		return fail("loading portfolio", err)
	}
	allocations, err := p.CurrentAllocations()
	if err != nil {
		return fail("computing allocations", err)
	}
	if err := printJSON(allocations); err != nil {
		return fail("encoding allocations", err)
	}
	return subcommands.ExitSuccess
}
