package model

import "destiny/internal/xdecimal"

// SymbolIndex is an insertion-ordered map from symbol to *SymbolPosition.
// Symbol insertion order drives the event loop's per-tick refresh order.
type SymbolIndex struct {
	symbols []string
	byName  map[string]*SymbolPosition
}

// NewSymbolIndex returns an empty index.
func NewSymbolIndex() *SymbolIndex {
	return &SymbolIndex{byName: make(map[string]*SymbolPosition)}
}

// Insert adds a new symbol position. Callers must check Contains first —
// re-inserting an existing symbol is rejected at the store layer.
func (idx *SymbolIndex) Insert(sp *SymbolPosition) {
	if _, exists := idx.byName[sp.Symbol]; !exists {
		idx.symbols = append(idx.symbols, sp.Symbol)
	}
	idx.byName[sp.Symbol] = sp
}

// Contains reports whether symbol has been initialized.
func (idx *SymbolIndex) Contains(symbol string) bool {
	_, ok := idx.byName[symbol]
	return ok
}

// Get returns the *SymbolPosition for symbol.
func (idx *SymbolIndex) Get(symbol string) (*SymbolPosition, bool) {
	sp, ok := idx.byName[symbol]
	return sp, ok
}

// Symbols returns all symbols in insertion order.
func (idx *SymbolIndex) Symbols() []string {
	out := make([]string, len(idx.symbols))
	copy(out, idx.symbols)
	return out
}

// Len returns the number of initialized symbols.
func (idx *SymbolIndex) Len() int { return len(idx.symbols) }

// All returns every *SymbolPosition in insertion order.
func (idx *SymbolIndex) All() []*SymbolPosition {
	out := make([]*SymbolPosition, 0, len(idx.symbols))
	for _, s := range idx.symbols {
		out = append(out, idx.byName[s])
	}
	return out
}

// Account is the authoritative account state: cash plus every initialized
// symbol's position.
type Account struct {
	Cash      xdecimal.Decimal
	Positions *SymbolIndex
}

// NewAccount builds an account with the given initial cash and no symbols.
func NewAccount(cash xdecimal.Decimal) *Account {
	return &Account{Cash: cash, Positions: NewSymbolIndex()}
}

// Margin is total frozen margin across every symbol.
func (a *Account) Margin() xdecimal.Decimal {
	total := xdecimal.Zero
	for _, sp := range a.Positions.All() {
		total = total.Add(sp.Margin())
	}
	return total
}

// PnL is total floating PnL across every symbol.
func (a *Account) PnL() xdecimal.Decimal {
	total := xdecimal.Zero
	for _, sp := range a.Positions.All() {
		total = total.Add(sp.PnL())
	}
	return total
}

// CashFrozen equals Margin().
func (a *Account) CashFrozen() xdecimal.Decimal { return a.Margin() }

// CashAvailable is cash - frozen + floating PnL.
func (a *Account) CashAvailable() xdecimal.Decimal {
	return a.Cash.Sub(a.CashFrozen()).Add(a.PnL())
}
