package cmd

import (
	"context"
	"flag"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// reportCmd renders the rebalance plan as markdown.
type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the rebalance plan as a table" }
func (*reportCmd) Usage() string {
	return `rebal report

  Displays the portfolio assets with their price, shares, value, current
  and target allocations, and the trade to perform, followed by the list of
  trades. The markdown is rendered when the output is a terminal.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		return fail("loading portfolio", err)
	}
	plan, err := rebalance.NewPlan(p)
	if err != nil {
		return fail("computing plan", err)
	}
	printMarkdown(renderer.PlanMarkdown(plan))
	return subcommands.ExitSuccess
}
