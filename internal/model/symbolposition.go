package model

import "destiny/internal/xdecimal"

// SymbolPosition aggregates everything the store tracks for one symbol:
// its rule, market prices, both position sides, leverage, and live orders.
type SymbolPosition struct {
	Symbol   string
	Rule     SymbolRule
	Market   SymbolMarket
	Leverage uint32
	Long     Position
	Short    Position
	Orders   *OrderIndex
}

// NewSymbolPosition builds an initialized, empty symbol position.
func NewSymbolPosition(symbol string, rule SymbolRule) *SymbolPosition {
	return &SymbolPosition{
		Symbol:   symbol,
		Rule:     rule,
		Leverage: 1,
		Long:     Position{Side: SideLong},
		Short:    Position{Side: SideShort},
		Orders:   NewOrderIndex(),
	}
}

// Position returns the Position for side.
func (sp *SymbolPosition) Position(side TradeSide) *Position {
	if side == SideLong {
		return &sp.Long
	}
	return &sp.Short
}

// sizeFrozen sums (size - dealSize) over live reduce-only orders on side —
// the implicit freeze a reduce-only close order places on available
// position size.
func (sp *SymbolPosition) sizeFrozen(side TradeSide) xdecimal.Decimal {
	frozen := xdecimal.Zero
	for _, o := range sp.Orders.Live() {
		if o.Side == side && o.ReduceOnly {
			frozen = frozen.Add(o.Size.Sub(o.DealSize))
		}
	}
	return frozen
}

// LongSizeFrozen is the long size held by live reduce-only close orders.
func (sp *SymbolPosition) LongSizeFrozen() xdecimal.Decimal { return sp.sizeFrozen(SideLong) }

// ShortSizeFrozen is the short size held by live reduce-only close orders.
func (sp *SymbolPosition) ShortSizeFrozen() xdecimal.Decimal { return sp.sizeFrozen(SideShort) }

// LongSizeAvailable is long size minus what is frozen by close orders.
func (sp *SymbolPosition) LongSizeAvailable() xdecimal.Decimal {
	return sp.Long.Size.Sub(sp.LongSizeFrozen())
}

// ShortSizeAvailable is short size minus what is frozen by close orders.
func (sp *SymbolPosition) ShortSizeAvailable() xdecimal.Decimal {
	return sp.Short.Size.Sub(sp.ShortSizeFrozen())
}

// Margin sums every live order's margin plus both position sides' margin —
// the total cash this symbol freezes from the account.
func (sp *SymbolPosition) Margin() xdecimal.Decimal {
	total := sp.Long.Margin(sp.Leverage).Add(sp.Short.Margin(sp.Leverage))
	for _, o := range sp.Orders.Live() {
		total = total.Add(o.Margin(sp.Market.Mark, sp.Leverage))
	}
	return total
}

// PnL is the symbol's floating PnL against mark, summed over both sides.
func (sp *SymbolPosition) PnL() xdecimal.Decimal {
	return sp.Long.PnL(sp.Market.Mark).Add(sp.Short.PnL(sp.Market.Mark))
}
