// Command rebal values a portfolio and computes the trades that bring it back
// to its target allocations.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/rebalance/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion(flag.CommandLine).Complete("rebal")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	if err := cmd.Setup(flag.CommandLine); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	if flag.NArg() == 0 {
		// plan is the default command
		flag.CommandLine.Parse([]string{"plan"})
	}
	os.Exit(int(commander.Execute(context.Background())))
}
