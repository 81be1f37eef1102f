package rebalance

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// holdings is a helper to build holdings from symbol, shares pairs.
func holdings(pairs ...any) *SymbolMap[Quantity] {
	m := NewSymbolMap[Quantity]()
	for i := 0; i < len(pairs); i += 2 {
		m.Set(pairs[i].(string), Q(pairs[i+1].(float64)))
	}
	return m
}

// targets is a helper to build targets from symbol, weight pairs.
func targets(pairs ...any) *SymbolMap[Weight] {
	m := NewSymbolMap[Weight]()
	for i := 0; i < len(pairs); i += 2 {
		m.Set(pairs[i].(string), W(pairs[i+1].(float64)))
	}
	return m
}

var (
	meta = NewAsset("META", USD(500))
	aapl = NewAsset("AAPL", USD(200))
	goog = NewAsset("GOOG", USD(100))
)
