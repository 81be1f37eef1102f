package rebalance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// document is the JSON representation of a Portfolio:
//
//	{
//	  "currency": "USD",
//	  "assets": [{"symbol": "META", "price": 500}],
//	  "holdings": {"META": 10},
//	  "targets": {"META": 1}
//	}
type document struct {
	Currency string               `json:"currency,omitempty"`
	Assets   []assetDocument      `json:"assets"`
	Holdings *SymbolMap[Quantity] `json:"holdings,omitempty"`
	Targets  *SymbolMap[Weight]   `json:"targets,omitempty"`
}

type assetDocument struct {
	Symbol string   `json:"symbol"`
	Price  Quantity `json:"price"` // in the document currency
}

// DecodePortfolio reads a portfolio document. Unknown fields are rejected.
// Holdings and targets keep the order of the document.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid portfolio document: %w", err)
	}

	assets := make([]Asset, 0, len(doc.Assets))
	for i, a := range doc.Assets {
		if a.Symbol == "" {
			return nil, fmt.Errorf("invalid portfolio document: asset #%d has no symbol", i)
		}
		assets = append(assets, NewAsset(a.Symbol, M(a.Price.value, doc.Currency)))
	}
	return NewPortfolio(assets, doc.Holdings, doc.Targets), nil
}

// DecodePortfolioAt reads a JSON file and decodes the portfolio document
// selected by a JSONPath expression, like "$.accounts.pea". An empty path
// selects the whole file.
//
// The selected document is re-encoded before decoding, so its holdings and
// targets come out sorted by symbol.
func DecodePortfolioAt(r io.Reader, path string) (*Portfolio, error) {
	if path == "" || path == "$" {
		return DecodePortfolio(r)
	}

	var jobj any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot select %q: %w", path, err)
	}
	// jsonpath returns a list for wildcard and filter expressions: keep the
	// single answer.
	if jlist, ok := jval.([]any); ok {
		if len(jlist) != 1 {
			return nil, fmt.Errorf("%q selects %d documents, want 1", path, len(jlist))
		}
		jval = jlist[0]
	}
	if _, ok := jval.(map[string]any); !ok {
		return nil, fmt.Errorf("%q does not select a JSON object", path)
	}

	raw, err := json.Marshal(jval)
	if err != nil {
		return nil, fmt.Errorf("cannot re-encode %q: %w", path, err)
	}
	return DecodePortfolio(bytes.NewReader(raw))
}

// EncodePortfolio writes p as an indented portfolio document.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	assets := []json.RawMessage{}
	for _, a := range p.Assets() {
		var aw jsonObjectWriter
		aw.Append("symbol", a.Symbol())
		aw.Append("price", a.Price())
		raw, err := aw.MarshalJSON()
		if err != nil {
			return err
		}
		assets = append(assets, raw)
	}

	var dw jsonObjectWriter
	dw.Optional("currency", p.Currency())
	dw.Append("assets", assets)
	dw.Append("holdings", p.holdings)
	dw.Append("targets", p.targets)
	raw, err := dw.MarshalJSON()
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(w)
	return err
}

// SamplePortfolio returns a two assets portfolio, heavily over-allocated in
// AAPL compared to its 50/50 targets.
func SamplePortfolio() *Portfolio {
	meta := NewAsset("META", M(500, "USD"))
	aapl := NewAsset("AAPL", M(200, "USD"))
	return NewPortfolio(
		[]Asset{meta, aapl},
		NewSymbolMap[Quantity]().
			Set(meta.Symbol(), Q(10)).
			Set(aapl.Symbol(), Q(300)),
		NewSymbolMap[Weight]().
			Set(meta.Symbol(), W(0.5)).
			Set(aapl.Symbol(), W(0.5)),
	)
}
