package store

import (
	"fmt"

	"destiny/internal/model"
)

// checkInvariants validates a symbol's accounting invariants after a
// mutation. A failure here marks a bug in the caller, not a legitimate
// rejection of strategy input — invariant violations abort the run.
func checkInvariants(sp *model.SymbolPosition) error {
	if sp.Long.Size.LessThan(sp.LongSizeFrozen()) {
		return invariantErr(sp.Symbol, "long.size < long_size_frozen")
	}
	if sp.Short.Size.LessThan(sp.ShortSizeFrozen()) {
		return invariantErr(sp.Symbol, "short.size < short_size_frozen")
	}
	if sp.Long.Size.IsZero() && !sp.Long.Price.IsZero() {
		return invariantErr(sp.Symbol, "long.size == 0 but long.price != 0")
	}
	if sp.Short.Size.IsZero() && !sp.Short.Price.IsZero() {
		return invariantErr(sp.Symbol, "short.size == 0 but short.price != 0")
	}
	return checkTickBounds(sp)
}

func checkTickBounds(sp *model.SymbolPosition) error {
	rule := sp.Rule
	for _, pos := range []model.Position{sp.Long, sp.Short} {
		if pos.Size.IsZero() {
			continue
		}
		if !pos.Size.QuantizeTick(rule.SizeTick).Equal(pos.Size) {
			return invariantErr(sp.Symbol, "position size not a multiple of size_tick")
		}
		if pos.Size.LessThan(rule.SizeMin) || pos.Size.GreaterThan(rule.SizeMax) {
			return invariantErr(sp.Symbol, "position size outside rule bounds")
		}
	}
	for _, o := range sp.Orders.Live() {
		if !o.Size.QuantizeTick(rule.SizeTick).Equal(o.Size) {
			return invariantErr(sp.Symbol, "order size not a multiple of size_tick")
		}
		if o.Type == model.OrderTypeLimit && !o.Price.QuantizeTick(rule.PriceTick).Equal(o.Price) {
			return invariantErr(sp.Symbol, "order price not a multiple of price_tick")
		}
	}
	return nil
}

func invariantErr(symbol, what string) error {
	return fmt.Errorf("store: invariant violated for %s: %s: %w", symbol, what, model.ErrInvariantViolated)
}
