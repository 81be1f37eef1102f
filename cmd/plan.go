package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// planCmd prints the value, the allocations and the trades of the portfolio.
type planCmd struct{}

func (*planCmd) Name() string { return "plan" }
func (*planCmd) Synopsis() string {
	return "print the value, allocations and trades of the portfolio (default)"
}
func (*planCmd) Usage() string {
	return `rebal plan

  Prints the total value of the portfolio, its current allocations and the
  shares to buy or sell to reach the targets, as JSON objects, followed by
  one sentence per trade.

  This is the command run when no command is given.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		return fail("loading portfolio", err)
	}

	total, err := p.TotalValue()
	if err != nil {
		return fail("computing total value", err)
	}
	allocations, err := p.CurrentAllocations()
	if err != nil {
		return fail("computing allocations", err)
	}
	actions, err := p.Rebalance()
	if err != nil {
		return fail("computing rebalance", err)
	}
	allocationsJSON, err := json.Marshal(allocations)
	if err != nil {
		return fail("encoding allocations", err)
	}
	actionsJSON, err := json.Marshal(actions)
	if err != nil {
		return fail("encoding rebalance", err)
	}

	fmt.Fprintf(stdout, "Total value: %s\n", total.Number())
	fmt.Fprintf(stdout, "Current allocations: %s\n", allocationsJSON)
	fmt.Fprintf(stdout, "Rebalance: %s\n\n", actionsJSON)

	colored := isTerminal(stdout)
	r := lipgloss.NewRenderer(stdout)
	buy := r.NewStyle().Foreground(lipgloss.Color("2"))
	sell := r.NewStyle().Foreground(lipgloss.Color("1"))

	fmt.Fprintln(stdout, "Rebalance actions:")
	for symbol, delta := range actions.All() {
		if delta.IsZero() {
			continue
		}
		line := renderer.ActionLine(symbol, delta)
		if colored {
			style := buy
			if delta.IsNegative() {
				style = sell
			}
			line = style.Render(line)
		}
		fmt.Fprintln(stdout, line)
	}
	return subcommands.ExitSuccess
}
