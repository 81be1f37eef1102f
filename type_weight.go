package rebalance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// weightPrecision is the tolerance used to compare weights.
var weightPrecision = decimal.New(1, -4)

// Weight is a fraction of a portfolio value: 0.5 stands for 50%.
type Weight struct {
	value decimal.Decimal
}

// W creates a Weight.
func W[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Weight {
	return Weight{value: newDecimal(value)}
}

func (w Weight) Add(v Weight) Weight       { return Weight{value: w.value.Add(v.value)} }
func (w Weight) Sub(v Weight) Weight       { return Weight{value: w.value.Sub(v.value)} }
func (w Weight) IsZero() bool              { return w.value.IsZero() }
func (w Weight) IsNegative() bool          { return w.value.IsNegative() }
func (w Weight) String() string            { return w.value.String() }
func (w Weight) Float64() float64          { return w.value.InexactFloat64() }
func (w Weight) Round(places int32) Weight { return Weight{value: w.value.Round(places)} }

// Equal compares two weights with a precision of 0.0001.
func (w Weight) Equal(v Weight) bool {
	return w.value.Sub(v.value).Abs().LessThan(weightPrecision)
}

// Percent returns the weight as a percentage with two decimals, e.g. "50.00%".
func (w Weight) Percent() string {
	return fmt.Sprintf("%s%%", w.value.Shift(2).StringFixed(2))
}

// MarshalJSON writes the weight as a bare JSON number.
func (w Weight) MarshalJSON() ([]byte, error) {
	return []byte(w.value.String()), nil
}

// UnmarshalJSON accepts both a JSON number and a quoted decimal.
func (w *Weight) UnmarshalJSON(b []byte) error {
	return w.value.UnmarshalJSON(b)
}
