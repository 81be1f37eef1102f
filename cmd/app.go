// Package cmd implements the CLI application to value and rebalance a portfolio.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"slices"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

const (
	EnvPortfolioFile = "REBAL_PORTFOLIO_FILE"
	EnvPath          = "REBAL_PATH"
	EnvVerbose       = "REBAL_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	portfolioFile = flag.String("portfolio-file", "", "Path to the portfolio JSON document. The built-in sample portfolio is used when empty.")
	portfolioPath = flag.String("path", "", "JSONPath expression selecting the portfolio inside the file, e.g. $.accounts.pea")
	Verbose       = flag.Bool("v", false, "log what is going on to stderr")
)

// envFlags maps global flag names to the environment variable giving their default.
var envFlags = map[string]string{
	"portfolio-file": EnvPortfolioFile,
	"path":           EnvPath,
	"v":              EnvVerbose,
}

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	logger           = zap.NewNop()
)

// Commands lists all the subcommands, in their display group.
var Commands = map[string][]subcommands.Command{
	"computations": {&planCmd{}, &valueCmd{}, &allocationsCmd{}, &rebalanceCmd{}},
	"reports":      {&reportCmd{}, &applyCmd{}, &checkCmd{}},
	"help":         {&topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, group := range slices.Sorted(maps.Keys(Commands)) {
		for _, cmd := range Commands[group] {
			c.Register(cmd, group)
		}
	}
}

// Setup completes the global flags that were not set on the command line with
// the environment (after loading an optional .env file), and creates the
// logger. It must be called after the flags have been parsed.
func Setup(f *flag.FlagSet) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	for name, env := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok || set[name] || f.Lookup(name) == nil {
			continue
		}
		if err := f.Set(name, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, v, err)
		}
	}

	logger = newLogger(*Verbose)
	return nil
}

// DecodePortfolio loads the portfolio selected by the global flags.
func DecodePortfolio() (*rebalance.Portfolio, error) {
	if *portfolioFile == "" {
		logger.Debug("no portfolio file, using the sample portfolio")
		return rebalance.SamplePortfolio(), nil
	}

	f, err := os.Open(*portfolioFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open portfolio file: %w", err)
	}
	defer f.Close()

	p, err := rebalance.DecodePortfolioAt(f, *portfolioPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", *portfolioFile, err)
	}
	logger.Debug("portfolio loaded",
		zap.String("file", *portfolioFile),
		zap.String("path", *portfolioPath),
		zap.Int("assets", len(p.Assets())),
		zap.Int("holdings", p.Holdings().Len()),
		zap.Int("targets", p.Targets().Len()),
	)
	if err := p.Validate(); err != nil {
		logger.Warn("portfolio is not consistent, run `rebal check` for details", zap.Error(err))
	}
	return p, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// printMarkdown renders md for the terminal, or prints it as is when the
// output is not a terminal.
func printMarkdown(md string) {
	if !isTerminal(stdout) {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		logger.Debug("cannot create markdown renderer", zap.Error(err))
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Debug("cannot render markdown", zap.Error(err))
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// printJSON writes v as a single line of JSON.
func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s\n", b)
	return err
}

// fail reports err on stderr and returns the failure exit status.
func fail(what string, err error) subcommands.ExitStatus {
	logger.Debug(what, zap.Error(err))
	fmt.Fprintf(stderr, "Error %s: %v\n", what, err)
	return subcommands.ExitFailure
}
