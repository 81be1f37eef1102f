package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// checkCmd reports the portfolio inconsistencies.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "check the portfolio for inconsistencies" }
func (*checkCmd) Usage() string {
	return `rebal check

  Lists unknown symbols, non positive prices, negative holdings, mixed
  currencies and targets that do not sum to 1. Exits with a failure status
  if anything was found.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		return fail("loading portfolio", err)
	}
	err = p.Validate()
	if err == nil {
		fmt.Fprintln(stdout, "✅ portfolio is consistent")
		return subcommands.ExitSuccess
	}

	findings := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		findings = joined.Unwrap()
	}
	for _, e := range findings {
		fmt.Fprintf(stdout, "❌ %v\n", e)
	}
	return subcommands.ExitFailure
}
