package cmd

import (
	"context"
	"flag"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// applyCmd prints the portfolio as it would be after the rebalance.
type applyCmd struct{}

func (*applyCmd) Name() string     { return "apply" }
func (*applyCmd) Synopsis() string { return "print the portfolio document after the trades" }
func (*applyCmd) Usage() string {
	return `rebal apply

  Computes the trades and prints the resulting portfolio document on the
  standard output. Nothing is written to the portfolio file: redirect the
  output to keep it.

Usage Examples:
$ rebal -portfolio-file current.json apply > next.json
`
}

func (c *applyCmd) SetFlags(f *flag.FlagSet) {}

func (c *applyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		return fail("loading portfolio", err)
	}
	actions, err := p.Rebalance()
	if err != nil {
		return fail("computing rebalance", err)
	}
	next, err := p.Apply(actions)
	if err != nil {
		return fail("applying rebalance", err)
	}
	if err := rebalance.EncodePortfolio(stdout, next); err != nil {
		return fail("encoding portfolio", err)
	}
	return subcommands.ExitSuccess
}
