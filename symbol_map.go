package rebalance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// SymbolMap maps asset symbols to values and remembers the order in which
// symbols were first set. Its zero value is an empty map ready to use.
type SymbolMap[V any] struct {
	symbols []string
	values  map[string]V
}

// NewSymbolMap returns an empty SymbolMap.
func NewSymbolMap[V any]() *SymbolMap[V] {
	return &SymbolMap[V]{values: make(map[string]V)}
}

// Set associates v to symbol. A new symbol is appended, an existing one
// keeps its position. Set returns m to allow chaining.
func (m *SymbolMap[V]) Set(symbol string, v V) *SymbolMap[V] {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[symbol]; !exists {
		m.symbols = append(m.symbols, symbol)
	}
	m.values[symbol] = v
	return m
}

// Get returns the value associated with symbol.
func (m *SymbolMap[V]) Get(symbol string) (v V, ok bool) {
	if m == nil {
		return v, false
	}
	v, ok = m.values[symbol]
	return
}

// Has reports whether symbol is in the map.
func (m *SymbolMap[V]) Has(symbol string) bool {
	_, ok := m.Get(symbol)
	return ok
}

// Len returns the number of symbols.
func (m *SymbolMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.symbols)
}

// Symbols returns a copy of the symbols in insertion order.
func (m *SymbolMap[V]) Symbols() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.symbols)
}

// All iterates over symbols and values in insertion order.
func (m *SymbolMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, s := range m.symbols {
			if !yield(s, m.values[s]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of m. Cloning nil returns an empty map.
func (m *SymbolMap[V]) Clone() *SymbolMap[V] {
	c := NewSymbolMap[V]()
	for s, v := range m.All() {
		c.Set(s, v)
	}
	return c
}

// MarshalJSON encodes the map as a JSON object, keys in insertion order.
func (m *SymbolMap[V]) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for s, v := range m.All() {
		w.Append(s, v)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, keeping the document order of its keys.
func (m *SymbolMap[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		// null is an empty map
		*m = SymbolMap[V]{values: make(map[string]V)}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected a JSON object of symbols, got %v", tok)
	}
	res := SymbolMap[V]{values: make(map[string]V)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		symbol, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected a symbol, got %v", tok)
		}
		if res.Has(symbol) {
			return fmt.Errorf("duplicate symbol %q", symbol)
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("invalid value for %q: %w", symbol, err)
		}
		res.Set(symbol, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = res
	return nil
}
