package rebalance

import "fmt"

// Portfolio is an immutable snapshot of assets, the shares held for each of
// them, and the weight each of them should have in the total value.
//
// Every method is a pure function of the values given to NewPortfolio. A
// rebalanced portfolio is a new Portfolio, see Apply.
type Portfolio struct {
	assets   *SymbolMap[Asset]
	holdings *SymbolMap[Quantity]
	targets  *SymbolMap[Weight]
}

// NewPortfolio creates a Portfolio. Assets are indexed by their symbol, a
// later asset replaces an earlier one with the same symbol.
//
// holdings and targets are copied, changing them afterwards has no effect on
// the portfolio. Both can be nil.
//
// Targets conventionally sum to 1, this is not enforced (see Validate).
func NewPortfolio(assets []Asset, holdings *SymbolMap[Quantity], targets *SymbolMap[Weight]) *Portfolio {
	p := &Portfolio{
		assets:   NewSymbolMap[Asset](),
		holdings: holdings.Clone(),
		targets:  targets.Clone(),
	}
	for _, a := range assets {
		p.assets.Set(a.Symbol(), a)
	}
	return p
}

// Asset returns the asset for symbol.
func (p *Portfolio) Asset(symbol string) (Asset, bool) { return p.assets.Get(symbol) }

// Assets returns the assets in declaration order.
func (p *Portfolio) Assets() []Asset {
	res := make([]Asset, 0, p.assets.Len())
	for _, a := range p.assets.All() {
		res = append(res, a)
	}
	return res
}

// Holding returns the number of shares held for symbol, zero if not held.
func (p *Portfolio) Holding(symbol string) Quantity {
	q, _ := p.holdings.Get(symbol)
	return q
}

// Target returns the target weight of symbol.
func (p *Portfolio) Target(symbol string) (Weight, bool) { return p.targets.Get(symbol) }

// Holdings returns a copy of the holdings.
func (p *Portfolio) Holdings() *SymbolMap[Quantity] { return p.holdings.Clone() }

// Targets returns a copy of the target weights.
func (p *Portfolio) Targets() *SymbolMap[Weight] { return p.targets.Clone() }

// asset returns the asset for symbol or an ErrUnknownSymbol.
func (p *Portfolio) asset(symbol string) (Asset, error) {
	a, ok := p.assets.Get(symbol)
	if !ok {
		return Asset{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return a, nil
}

// TotalValue returns the sum of shares × price over all holdings.
// It is zero for a portfolio without holdings.
func (p *Portfolio) TotalValue() (Money, error) {
	var total Money
	for symbol, shares := range p.holdings.All() {
		a, err := p.asset(symbol)
		if err != nil {
			return Money{}, err
		}
		value := a.Price().Mul(shares)
		if err := sameCurrency(total, value); err != nil {
			return Money{}, fmt.Errorf("value of %q: %w", symbol, err)
		}
		total = total.Add(value)
	}
	return total, nil
}

// CurrentAllocations returns, for each holding, the fraction of the total
// value it represents, rounded to 2 decimal places. The rounding is for
// display: the fractions may not sum to exactly 1.
//
// A portfolio worth nothing has no allocation and returns ErrZeroValue.
func (p *Portfolio) CurrentAllocations() (*SymbolMap[Weight], error) {
	total, err := p.TotalValue()
	if err != nil {
		return nil, err
	}
	if total.IsZero() {
		return nil, ErrZeroValue
	}

	res := NewSymbolMap[Weight]()
	for symbol, shares := range p.holdings.All() {
		a, _ := p.asset(symbol) // TotalValue checked them all
		value := a.Price().Mul(shares)
		res.Set(symbol, value.DivTotal(total).Round(2))
	}
	return res, nil
}

// Rebalance returns, for each symbol with a target, the number of shares to
// buy (positive) or to sell (negative) to reach its target weight. Deltas are
// not rounded.
//
// A target symbol that is not held counts as zero shares. A held symbol
// without a target is left out of the result.
func (p *Portfolio) Rebalance() (*SymbolMap[Quantity], error) {
	total, err := p.TotalValue()
	if err != nil {
		return nil, err
	}

	actions := NewSymbolMap[Quantity]()
	for symbol, weight := range p.targets.All() {
		a, err := p.asset(symbol)
		if err != nil {
			return nil, err
		}
		price := a.Price()
		if !price.IsPositive() {
			return nil, fmt.Errorf("%w: %q is priced %s", ErrInvalidPrice, symbol, price.Number())
		}
		if err := sameCurrency(total, price); err != nil {
			return nil, fmt.Errorf("price of %q: %w", symbol, err)
		}

		current := price.Mul(p.Holding(symbol))
		target := total.MulWeight(weight)
		actions.Set(symbol, target.Sub(current).DivPrice(price))
	}
	return actions, nil
}

// Apply returns a new Portfolio whose holdings are the current holdings plus
// the given share deltas. Symbols not held yet are added after the existing
// ones. The receiver is not modified.
func (p *Portfolio) Apply(actions *SymbolMap[Quantity]) (*Portfolio, error) {
	holdings := p.holdings.Clone()
	for symbol, delta := range actions.All() {
		if _, err := p.asset(symbol); err != nil {
			return nil, err
		}
		q, _ := holdings.Get(symbol)
		holdings.Set(symbol, q.Add(delta))
	}
	return &Portfolio{
		assets:   p.assets.Clone(),
		holdings: holdings,
		targets:  p.targets.Clone(),
	}, nil
}

// Currency returns the currency of the portfolio assets, or "" if there is no
// asset or if they disagree.
func (p *Portfolio) Currency() string {
	cur := ""
	for _, a := range p.assets.All() {
		c := a.Price().Currency()
		switch {
		case c == "":
		case cur == "":
			cur = c
		case cur != c:
			return ""
		}
	}
	return cur
}

// sameCurrency returns ErrCurrencyMismatch if a and b have different non empty
// currencies.
func sameCurrency(a, b Money) error {
	if a.Currency() != "" && b.Currency() != "" && a.Currency() != b.Currency() {
		return fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, a.Currency(), b.Currency())
	}
	return nil
}
