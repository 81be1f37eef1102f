package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

// rebalanceCmd prints the share deltas as JSON.
type rebalanceCmd struct{}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "print the shares to buy or sell to reach the targets" }
func (*rebalanceCmd) Usage() string {
	return `rebal rebalance

  Prints, as a JSON object, the shares to buy (positive) or to sell
  (negative) for every asset with a target. Values are not rounded.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		return fail("loading portfolio", err)
	}
	actions, err := p.Rebalance()
	if err != nil {
		return fail("computing rebalance", err)
	}
	if err := printJSON(actions); err != nil {
		return fail("encoding rebalance", err)
	}
	return subcommands.ExitSuccess
}
