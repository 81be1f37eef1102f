package rebalance

import (
	"errors"
	"fmt"
)

// Validate checks the portfolio consistency and returns all the findings
// joined with errors.Join, or nil. The computations do not call it: a portfolio that does not
// validate can still be valued and rebalanced, as long as the symbols it
// uses are known.
func (p *Portfolio) Validate() error {
	var errs []error
	currency := ""
	for symbol, a := range p.assets.All() {
		if !a.Price().IsPositive() {
			errs = append(errs, fmt.Errorf("asset %q: %w, got %s", symbol, ErrInvalidPrice, a.Price().Number()))
		}
		switch c := a.Price().Currency(); {
		case c == "":
		case currency == "":
			currency = c
		case c != currency:
			errs = append(errs, fmt.Errorf("asset %q: %w: %s and %s", symbol, ErrCurrencyMismatch, currency, c))
		}
	}

	for symbol, shares := range p.holdings.All() {
		if !p.assets.Has(symbol) {
			errs = append(errs, fmt.Errorf("holding %q: %w", symbol, ErrUnknownSymbol))
		}
		if shares.IsNegative() {
			errs = append(errs, fmt.Errorf("holding %q: shares must not be negative, got %s", symbol, shares))
		}
	}

	var sum Weight
	for symbol, w := range p.targets.All() {
		if !p.assets.Has(symbol) {
			errs = append(errs, fmt.Errorf("target %q: %w", symbol, ErrUnknownSymbol))
		}
		if w.IsNegative() {
			errs = append(errs, fmt.Errorf("target %q: weight must not be negative, got %s", symbol, w))
		}
		sum = sum.Add(w)
	}
	if p.targets.Len() > 0 && !sum.Equal(W(1)) {
		errs = append(errs, fmt.Errorf("targets sum to %s, want 1", sum))
	}
	return errors.Join(errs...)
}
