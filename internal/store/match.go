package store

import (
	"destiny/internal/model"
	"destiny/internal/xdecimal"
)

// cross matches every live order on sp against its just-refreshed last
// price. Caller must hold s.mu. Orders that do not cross advance from
// created to submitted (taker -> maker, one-time) and stay resting; orders
// that cross are filled and removed. All live orders are processed as one
// atomic mutation before any invariant check or callback.
func (s *Store) cross(sp *model.SymbolPosition) ([]model.Order, error) {
	last := sp.Market.Last
	var filled []model.Order
	var toRemove []string

	for _, o := range sp.Orders.Live() {
		if !crossesAt(o, last) {
			if o.Status == model.OrderStatusCreated {
				o.Status = model.OrderStatusSubmitted
			}
			continue
		}

		feeRate := s.feeRateMaker
		if o.Status == model.OrderStatusCreated {
			feeRate = s.feeRateTaker
		}
		fee := o.Size.Mul(last).Mul(feeRate)
		s.account.Cash = s.account.Cash.Sub(fee)

		pos := sp.Position(o.Side)
		if o.ReduceOnly {
			pnl := last.Sub(pos.Price).Mul(o.Size)
			if o.Side == model.SideShort {
				pnl = pnl.Neg()
			}
			s.account.Cash = s.account.Cash.Add(pnl)
			pos.ApplyCloseFill(o.Size)
		} else {
			effectivePrice := o.Price
			if o.Type == model.OrderTypeMarket {
				effectivePrice = last
			}
			pos.ApplyOpenFill(effectivePrice, o.Size)
		}

		o.Status = model.OrderStatusFilled
		o.DealPrice = last
		o.DealSize = o.Size
		o.DealFee = fee
		filled = append(filled, o.Clone())
		toRemove = append(toRemove, o.ID)
	}

	for _, id := range toRemove {
		sp.Orders.Delete(id)
	}

	if err := checkInvariants(sp); err != nil {
		return nil, err
	}
	return filled, nil
}

// crossesAt applies the crossing rule table: market orders always cross;
// limit orders cross against last according to side and open/close.
func crossesAt(o *model.Order, last xdecimal.Decimal) bool {
	if o.Type == model.OrderTypeMarket {
		return true
	}
	switch {
	case o.Side == model.SideLong && !o.ReduceOnly:
		return o.Price.GreaterThanOrEqual(last)
	case o.Side == model.SideLong && o.ReduceOnly:
		return o.Price.LessThanOrEqual(last)
	case o.Side == model.SideShort && !o.ReduceOnly:
		return o.Price.LessThanOrEqual(last)
	default:
		return o.Price.GreaterThanOrEqual(last)
	}
}
