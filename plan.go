package rebalance

// Action is what to do with an asset to reach its target.
type Action int

const (
	Hold       Action = iota // already on target
	Buy                      // under-allocated
	Sell                     // over-allocated
	Untargeted               // held without a target
)

func (a Action) String() string {
	switch a {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	case Untargeted:
		return "untargeted"
	default:
		return "hold"
	}
}

// PlanLine is the rebalancing view of a single asset.
type PlanLine struct {
	Symbol    string
	Price     Money
	Shares    Quantity
	Value     Money
	Current   Weight // rounded to 2 decimals, like CurrentAllocations
	Target    Weight
	HasTarget bool
	Delta     Quantity // signed shares to trade, zero when Untargeted
	Action    Action
}

// Plan gathers the valuation, the allocations and the trades of a portfolio.
type Plan struct {
	Currency   string
	TotalValue Money
	Lines      []PlanLine
}

// NewPlan computes the plan of p. Lines list the held symbols first, in
// holding order, then the symbols that only have a target.
func NewPlan(p *Portfolio) (*Plan, error) {
	total, err := p.TotalValue()
	if err != nil {
		return nil, err
	}
	allocations, err := p.CurrentAllocations()
	if err != nil {
		return nil, err
	}
	actions, err := p.Rebalance()
	if err != nil {
		return nil, err
	}

	plan := &Plan{Currency: p.Currency(), TotalValue: total}
	line := func(symbol string) PlanLine {
		a, _ := p.Asset(symbol) // all symbols have been checked by Rebalance and TotalValue
		l := PlanLine{
			Symbol: symbol,
			Price:  a.Price(),
			Shares: p.Holding(symbol),
		}
		l.Value = l.Price.Mul(l.Shares)
		l.Current, _ = allocations.Get(symbol)
		l.Target, l.HasTarget = p.Target(symbol)
		l.Delta, _ = actions.Get(symbol)
		switch {
		case !l.HasTarget:
			l.Action = Untargeted
		case l.Delta.IsPositive():
			l.Action = Buy
		case l.Delta.IsNegative():
			l.Action = Sell
		default:
			l.Action = Hold
		}
		return l
	}

	for symbol := range p.holdings.All() {
		plan.Lines = append(plan.Lines, line(symbol))
	}
	for symbol := range p.targets.All() {
		if !p.holdings.Has(symbol) {
			plan.Lines = append(plan.Lines, line(symbol))
		}
	}
	return plan, nil
}
