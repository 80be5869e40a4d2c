package model

import (
	"time"

	"destiny/internal/xdecimal"
)

// SymbolRule is the immutable per-symbol trading rule established at
// symbol_init and never mutated afterward.
type SymbolRule struct {
	PriceMin  xdecimal.Decimal
	PriceMax  xdecimal.Decimal
	PriceTick xdecimal.Decimal
	SizeMin   xdecimal.Decimal
	SizeMax   xdecimal.Decimal
	SizeTick  xdecimal.Decimal
	AmountMin xdecimal.Decimal
	OrderMax  int
}

// DefaultSymbolRule returns permissive bounds for a freshly-initialized
// symbol (price/size effectively unconstrained, order_max=200) for callers
// that want to narrow them before trading begins.
func DefaultSymbolRule() SymbolRule {
	tiny := xdecimal.NewFromFloat(1e-8)
	huge := xdecimal.NewFromFloat(1e8)
	return SymbolRule{
		PriceMin:  tiny,
		PriceMax:  huge,
		PriceTick: tiny,
		SizeMin:   tiny,
		SizeMax:   huge,
		SizeTick:  tiny,
		AmountMin: tiny,
		OrderMax:  200,
	}
}

// SymbolMarket is the mutable per-symbol price state refreshed once per
// tick. A zero price means "no data observed yet".
type SymbolMarket struct {
	Mark            xdecimal.Decimal
	Index           xdecimal.Decimal
	Last            xdecimal.Decimal
	Settlement      xdecimal.Decimal
	SettlementTime  time.Time
	ObservationTime time.Time
}
