package model

import "destiny/internal/xdecimal"

// Position is one side (long or short) of a symbol's holdings. Invariant
// I4: Size == 0 implies Price == 0.
type Position struct {
	Side  TradeSide
	Price xdecimal.Decimal
	Size  xdecimal.Decimal
}

// Margin is the position's notional divided by leverage.
func (p Position) Margin(leverage uint32) xdecimal.Decimal {
	if p.Size.IsZero() {
		return xdecimal.Zero
	}
	notional := p.Size.Mul(p.Price)
	return notional.Div(xdecimal.NewFromInt(int64(leverage)))
}

// PnL is the floating profit/loss against mark, signed by side.
func (p Position) PnL(mark xdecimal.Decimal) xdecimal.Decimal {
	if p.Size.IsZero() {
		return xdecimal.Zero
	}
	delta := mark.Sub(p.Price)
	if p.Side == SideShort {
		delta = delta.Neg()
	}
	return delta.Mul(p.Size)
}

// ApplyOpenFill weighted-averages in a new fill at effectivePrice/size,
// increasing Size. Used for opening (increasing) fills only.
func (p *Position) ApplyOpenFill(effectivePrice, size xdecimal.Decimal) {
	totalNotional := effectivePrice.Mul(size).Add(p.Price.Mul(p.Size))
	newSize := p.Size.Add(size)
	p.Price = totalNotional.Div(newSize)
	p.Size = newSize
}

// ApplyCloseFill reduces Size by size, resetting Price to zero once flat
// (invariant I4). It does not compute realized PnL — callers compute that
// before calling, from the pre-reduction Price.
func (p *Position) ApplyCloseFill(size xdecimal.Decimal) {
	p.Size = p.Size.Sub(size)
	if p.Size.IsZero() {
		p.Price = xdecimal.Zero
	}
}
