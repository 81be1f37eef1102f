package rebalance

import (
	"errors"
	"testing"
)

func TestPortfolio_TotalValue(t *testing.T) {
	tests := []struct {
		name      string
		portfolio *Portfolio
		want      Money
		wantErr   error
	}{
		{
			name:      "sample",
			portfolio: SamplePortfolio(),
			want:      USD(65000),
		},
		{
			name:      "fractional shares",
			portfolio: NewPortfolio([]Asset{meta}, holdings("META", 0.25), nil),
			want:      USD(125),
		},
		{
			name:      "empty holdings",
			portfolio: NewPortfolio([]Asset{meta, aapl}, nil, targets("META", 0.5, "AAPL", 0.5)),
			want:      M(0, ""),
		},
		{
			name:      "holding without asset",
			portfolio: NewPortfolio([]Asset{meta}, holdings("META", 1.0, "TSLA", 1.0), nil),
			wantErr:   ErrUnknownSymbol,
		},
		{
			name:      "mixed currencies",
			portfolio: NewPortfolio([]Asset{meta, NewAsset("AIR", EUR(150))}, holdings("META", 1.0, "AIR", 1.0), nil),
			wantErr:   ErrCurrencyMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.portfolio.TotalValue()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("TotalValue() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("TotalValue() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("TotalValue() = %v %q, want %v %q", got.Number(), got.Currency(), tt.want.Number(), tt.want.Currency())
			}
		})
	}
}

func TestPortfolio_CurrentAllocations(t *testing.T) {
	p := SamplePortfolio()
	got, err := p.CurrentAllocations()
	if err != nil {
		t.Fatalf("CurrentAllocations() unexpected error: %v", err)
	}

	want := targets("META", 0.08, "AAPL", 0.92)
	if got.Len() != want.Len() {
		t.Fatalf("CurrentAllocations() has %d entries, want %d", got.Len(), want.Len())
	}
	for symbol, w := range want.All() {
		g, ok := got.Get(symbol)
		if !ok {
			t.Errorf("CurrentAllocations() misses %q", symbol)
			continue
		}
		// rounded to exactly two decimals.
		if g.String() != w.String() {
			t.Errorf("CurrentAllocations()[%q] = %s, want %s", symbol, g, w)
		}
	}

	if s := got.Symbols(); s[0] != "META" || s[1] != "AAPL" {
		t.Errorf("CurrentAllocations() order = %v, want holding order", s)
	}
}

func TestPortfolio_CurrentAllocations_Rounding(t *testing.T) {
	// three equal holdings: 1/3 each, rounded down, the sum is not 1.
	p := NewPortfolio([]Asset{meta, aapl, goog}, holdings("META", 1.0, "AAPL", 2.5, "GOOG", 5.0), nil)
	got, err := p.CurrentAllocations()
	if err != nil {
		t.Fatalf("CurrentAllocations() unexpected error: %v", err)
	}
	var sum Weight
	for symbol, w := range got.All() {
		if w.String() != "0.33" {
			t.Errorf("CurrentAllocations()[%q] = %s, want 0.33", symbol, w)
		}
		sum = sum.Add(w)
	}
	if sum.String() != "0.99" {
		t.Errorf("sum of allocations = %s, want 0.99", sum)
	}
}

func TestPortfolio_CurrentAllocations_ZeroValue(t *testing.T) {
	tests := []struct {
		name      string
		portfolio *Portfolio
	}{
		{"empty holdings", NewPortfolio([]Asset{meta}, nil, nil)},
		{"zero shares", NewPortfolio([]Asset{meta}, holdings("META", 0.0), nil)},
		{"worthless asset", NewPortfolio([]Asset{NewAsset("META", USD(0))}, holdings("META", 10.0), nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.portfolio.CurrentAllocations()
			if !errors.Is(err, ErrZeroValue) {
				t.Errorf("CurrentAllocations() = %v, %v, want ErrZeroValue", got, err)
			}
		})
	}
}

func TestPortfolio_Rebalance(t *testing.T) {
	p := SamplePortfolio()
	got, err := p.Rebalance()
	if err != nil {
		t.Fatalf("Rebalance() unexpected error: %v", err)
	}

	metaDelta, _ := got.Get("META")
	aaplDelta, _ := got.Get("AAPL")
	if !metaDelta.IsPositive() {
		t.Errorf("META delta = %s, want a buy", metaDelta)
	}
	if !aaplDelta.IsNegative() {
		t.Errorf("AAPL delta = %s, want a sell", aaplDelta)
	}
	// (65000×0.5 − 5000)/500 and (65000×0.5 − 60000)/200
	if !metaDelta.Equal(Q(55)) {
		t.Errorf("META delta = %s, want 55", metaDelta)
	}
	if !aaplDelta.Equal(Q(-137.5)) {
		t.Errorf("AAPL delta = %s, want -137.5", aaplDelta)
	}
}

func TestPortfolio_Rebalance_NotRounded(t *testing.T) {
	p := NewPortfolio([]Asset{meta, aapl, goog},
		holdings("META", 1.0, "AAPL", 1.0, "GOOG", 1.0),
		targets("META", 1/3.0, "AAPL", 1/3.0, "GOOG", 1/3.0),
	)
	got, err := p.Rebalance()
	if err != nil {
		t.Fatalf("Rebalance() unexpected error: %v", err)
	}
	d, _ := got.Get("AAPL")
	// 800 × 1/3 − 200 = 66.66..., / 200 = 0.3333...
	if d.InDelta(Q(0.33), 1e-9) {
		t.Errorf("AAPL delta = %s, looks rounded", d)
	}
	if !d.InDelta(Q(1/3.0), 1e-9) {
		t.Errorf("AAPL delta = %s, want 1/3", d)
	}
}

func TestPortfolio_Rebalance_Policies(t *testing.T) {
	t.Run("target not held counts as zero shares", func(t *testing.T) {
		p := NewPortfolio([]Asset{meta, goog}, holdings("META", 10.0), targets("META", 0.5, "GOOG", 0.5))
		got, err := p.Rebalance()
		if err != nil {
			t.Fatalf("Rebalance() unexpected error: %v", err)
		}
		// total 5000: sell 5 META, buy 25 GOOG
		if d, _ := got.Get("META"); !d.Equal(Q(-5)) {
			t.Errorf("META delta = %s, want -5", d)
		}
		if d, _ := got.Get("GOOG"); !d.Equal(Q(25)) {
			t.Errorf("GOOG delta = %s, want 25", d)
		}
	})

	t.Run("held without target is omitted", func(t *testing.T) {
		p := NewPortfolio([]Asset{meta, aapl}, holdings("META", 10.0, "AAPL", 300.0), targets("META", 1.0))
		got, err := p.Rebalance()
		if err != nil {
			t.Fatalf("Rebalance() unexpected error: %v", err)
		}
		if got.Has("AAPL") {
			t.Errorf("Rebalance() = %v, want AAPL omitted", got.Symbols())
		}
		if d, _ := got.Get("META"); !d.Equal(Q(120)) {
			t.Errorf("META delta = %s, want 120", d)
		}
	})

	t.Run("target without asset", func(t *testing.T) {
		p := NewPortfolio([]Asset{meta}, holdings("META", 10.0), targets("META", 0.5, "TSLA", 0.5))
		if _, err := p.Rebalance(); !errors.Is(err, ErrUnknownSymbol) {
			t.Errorf("Rebalance() error = %v, want ErrUnknownSymbol", err)
		}
	})

	t.Run("zero price", func(t *testing.T) {
		p := NewPortfolio([]Asset{meta, NewAsset("ZERO", USD(0))}, holdings("META", 10.0), targets("META", 0.5, "ZERO", 0.5))
		if _, err := p.Rebalance(); !errors.Is(err, ErrInvalidPrice) {
			t.Errorf("Rebalance() error = %v, want ErrInvalidPrice", err)
		}
	})

	t.Run("empty portfolio holds", func(t *testing.T) {
		p := NewPortfolio([]Asset{meta}, nil, targets("META", 1.0))
		got, err := p.Rebalance()
		if err != nil {
			t.Fatalf("Rebalance() unexpected error: %v", err)
		}
		if d, _ := got.Get("META"); !d.IsZero() {
			t.Errorf("META delta = %s, want 0", d)
		}
	})
}

func TestPortfolio_Apply_FixedPoint(t *testing.T) {
	tests := []struct {
		name      string
		portfolio *Portfolio
	}{
		{"sample", SamplePortfolio()},
		{"thirds", NewPortfolio([]Asset{meta, aapl, goog},
			holdings("META", 3.0, "AAPL", 7.0, "GOOG", 11.0),
			targets("META", 1/3.0, "AAPL", 1/3.0, "GOOG", 1/3.0))},
		{"new position", NewPortfolio([]Asset{meta, goog},
			holdings("META", 10.0),
			targets("META", 0.2, "GOOG", 0.8))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, err := tt.portfolio.Rebalance()
			if err != nil {
				t.Fatalf("Rebalance() unexpected error: %v", err)
			}
			next, err := tt.portfolio.Apply(actions)
			if err != nil {
				t.Fatalf("Apply() unexpected error: %v", err)
			}
			again, err := next.Rebalance()
			if err != nil {
				t.Fatalf("Rebalance() after Apply() unexpected error: %v", err)
			}
			for symbol, d := range again.All() {
				if !d.InDelta(Q(0), 1e-9) {
					t.Errorf("delta[%q] after Apply() = %s, want 0", symbol, d)
				}
			}
		})
	}
}

func TestPortfolio_Apply_DoesNotMutate(t *testing.T) {
	p := SamplePortfolio()
	actions, _ := p.Rebalance()
	next, err := p.Apply(actions)
	if err != nil {
		t.Fatalf("Apply() unexpected error: %v", err)
	}
	if got := p.Holding("META"); !got.Equal(Q(10)) {
		t.Errorf("original META holding = %s, want 10", got)
	}
	if got := next.Holding("META"); !got.Equal(Q(65)) {
		t.Errorf("new META holding = %s, want 65", got)
	}
	if got := next.Holding("AAPL"); !got.Equal(Q(162.5)) {
		t.Errorf("new AAPL holding = %s, want 162.5", got)
	}

	if _, err := p.Apply(holdings("TSLA", 1.0)); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Apply(TSLA) error = %v, want ErrUnknownSymbol", err)
	}
}

func TestNewPortfolio_CopiesInputs(t *testing.T) {
	h := holdings("META", 10.0)
	tg := targets("META", 1.0)
	p := NewPortfolio([]Asset{meta}, h, tg)

	h.Set("META", Q(1000))
	tg.Set("META", W(0.1))

	if got := p.Holding("META"); !got.Equal(Q(10)) {
		t.Errorf("Holding(META) = %s, want 10", got)
	}
	if got, _ := p.Target("META"); !got.Equal(W(1)) {
		t.Errorf("Target(META) = %s, want 1", got)
	}

	p.Holdings().Set("META", Q(0))
	if got := p.Holding("META"); !got.Equal(Q(10)) {
		t.Errorf("Holding(META) after changing Holdings() = %s, want 10", got)
	}
}

func TestPortfolio_Validate(t *testing.T) {
	if err := SamplePortfolio().Validate(); err != nil {
		t.Errorf("SamplePortfolio().Validate() = %v, want nil", err)
	}

	p := NewPortfolio(
		[]Asset{meta, NewAsset("ZERO", USD(0)), NewAsset("AIR", EUR(150))},
		holdings("META", -1.0, "TSLA", 1.0),
		targets("META", 0.5, "NVDA", 0.2),
	)
	err := p.Validate()
	for _, want := range []error{ErrInvalidPrice, ErrCurrencyMismatch, ErrUnknownSymbol} {
		if !errors.Is(err, want) {
			t.Errorf("Validate() = %v, want it to contain %v", err, want)
		}
	}
	// invalid price, mismatch, unknown holding, negative holding, unknown target, sum.
	if n := len(err.(interface{ Unwrap() []error }).Unwrap()); n != 6 {
		t.Errorf("Validate() reported %d findings, want 6: %v", n, err)
	}
}
