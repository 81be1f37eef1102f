package rebalance

// Asset is a tradable instrument identified by its symbol, with its current
// price. The price is not validated: zero or negative prices are accepted and
// reported by Portfolio.Validate.
type Asset struct {
	symbol string
	price  Money
}

// NewAsset creates an Asset.
func NewAsset(symbol string, price Money) Asset {
	return Asset{symbol: symbol, price: price}
}

// Symbol returns the ticker symbol of the asset.
func (a Asset) Symbol() string { return a.symbol }

// Price returns the current price of one share.
func (a Asset) Price() Money { return a.price }
