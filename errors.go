package rebalance

import "errors"

var (
	// ErrUnknownSymbol is returned when a holding, a target or an action
	// references a symbol that has no asset.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrZeroValue is returned when allocations are computed on a portfolio
	// worth nothing.
	ErrZeroValue = errors.New("portfolio total value is zero")
	// ErrInvalidPrice is returned when a share quantity must be derived from
	// a zero or negative price.
	ErrInvalidPrice = errors.New("price must be positive")
	// ErrCurrencyMismatch is returned when assets are not all priced in the
	// same currency.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)
