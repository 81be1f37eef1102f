package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/rebalance"
)

// PlanMarkdown renders a rebalance plan as a markdown document: the total
// value, a table of the assets and the list of trades.
func PlanMarkdown(plan *rebalance.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Rebalance Plan\n\n")
	fmt.Fprintf(&b, "Total value: **%s**\n\n", plan.TotalValue)

	fmt.Fprintln(&b, "| Symbol | Price | Shares | Value | Current | Target | Trade |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|:---|")
	for _, l := range plan.Lines {
		target := "-"
		if l.HasTarget {
			target = l.Target.Percent()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			l.Symbol,
			l.Price,
			l.Shares,
			l.Value,
			l.Current.Percent(),
			target,
			trade(l),
		)
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Actions\n\n")
		n := 0
		for _, l := range plan.Lines {
			if l.Action != rebalance.Buy && l.Action != rebalance.Sell {
				continue
			}
			fmt.Fprintf(w, "* %s %s shares of %s\n", capitalize(l.Action.String()), l.Delta.Abs(), l.Symbol)
			n++
		}
		return n > 0
	})
	return b.String()
}

// trade is the short description of the trade in the plan table.
func trade(l rebalance.PlanLine) string {
	switch l.Action {
	case rebalance.Buy, rebalance.Sell:
		return l.Action.String() + " " + l.Delta.Abs().String()
	case rebalance.Untargeted:
		return "untargeted"
	default:
		return "-"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ActionLine returns the sentence describing a trade: "You need to buy 55
// shares of META" or "You need to sell 137.5 shares of AAPL". A zero delta
// has no sentence.
func ActionLine(symbol string, delta rebalance.Quantity) string {
	switch {
	case delta.IsPositive():
		return fmt.Sprintf("You need to buy %s shares of %s", delta, symbol)
	case delta.IsNegative():
		return fmt.Sprintf("You need to sell %s shares of %s", delta.Neg(), symbol)
	default:
		return ""
	}
}
