// Package store is the authoritative market-state store: cash, per-symbol
// rules, prices, positions, and live orders, guarded by a single coarse
// mutex. Every accessor returns a cloned snapshot; every mutation acquires
// the mutex, updates state, releases, and only then returns — callers
// needing to notify a strategy do so after the call returns, never while
// the mutex is held, so the store can never deadlock against a callback
// that calls back into it.
package store

import (
	"fmt"
	"sync"
	"time"

	"destiny/internal/model"
	"destiny/internal/xdecimal"
)

// Store holds the whole simulated account: cash, every initialized symbol's
// rule/market/positions/orders, and the fee schedule applied at crossing.
type Store struct {
	mu sync.Mutex

	account   *model.Account
	tradeTime time.Time

	feeRateTaker xdecimal.Decimal
	feeRateMaker xdecimal.Decimal
}

// New builds an empty store with the given starting cash and fee schedule.
func New(cash, feeRateTaker, feeRateMaker xdecimal.Decimal) *Store {
	return &Store{
		account:      model.NewAccount(cash),
		feeRateTaker: feeRateTaker,
		feeRateMaker: feeRateMaker,
	}
}

// SetTradeTime records the current simulated tick. It is the loop's job to
// call this once per tick before refreshing any symbol.
func (s *Store) SetTradeTime(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tradeTime = t
}

// Time returns the current simulated tick time.
func (s *Store) Time() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tradeTime
}

// Symbols returns every initialized symbol in insertion order.
func (s *Store) Symbols() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account.Positions.Symbols()
}

// SymbolInit registers a new symbol with the given rule. A symbol may only
// be initialized once; a second call is rejected.
func (s *Store) SymbolInit(symbol string, rule model.SymbolRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.account.Positions.Contains(symbol) {
		return fmt.Errorf("store: symbol_init %s: %w", symbol, model.ErrSymbolExists)
	}
	s.account.Positions.Insert(model.NewSymbolPosition(symbol, rule))
	return nil
}

// symbolLocked fetches a symbol position. Caller must hold s.mu.
func (s *Store) symbolLocked(symbol string) (*model.SymbolPosition, error) {
	sp, ok := s.account.Positions.Get(symbol)
	if !ok {
		return nil, fmt.Errorf("store: symbol %s: %w", symbol, model.ErrSymbolNotFound)
	}
	return sp, nil
}

// Cash is the account's raw cash balance.
func (s *Store) Cash() xdecimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account.Cash
}

// CashAvailable is cash minus frozen margin plus floating PnL.
func (s *Store) CashAvailable() xdecimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account.CashAvailable()
}

// CashFrozen is the account's total frozen margin.
func (s *Store) CashFrozen() xdecimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account.CashFrozen()
}

// Margin is the account's total frozen margin (alias of CashFrozen, exposed
// separately to match the engine handle's accessor surface).
func (s *Store) Margin() xdecimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account.Margin()
}

// PnL is the account's total floating PnL across every symbol.
func (s *Store) PnL() xdecimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account.PnL()
}
