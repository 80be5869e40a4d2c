package store

import (
	"fmt"
	"time"

	"destiny/internal/model"
	"destiny/internal/xdecimal"
)

// Rule returns symbol's immutable trading rule.
func (s *Store) Rule(symbol string) (model.SymbolRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, err := s.symbolLocked(symbol)
	if err != nil {
		return model.SymbolRule{}, err
	}
	return sp.Rule, nil
}

// PriceMark returns symbol's current mark price.
func (s *Store) PriceMark(symbol string) (xdecimal.Decimal, error) {
	return s.priceField(symbol, func(m model.SymbolMarket) xdecimal.Decimal { return m.Mark })
}

// PriceIndex returns symbol's current index price.
func (s *Store) PriceIndex(symbol string) (xdecimal.Decimal, error) {
	return s.priceField(symbol, func(m model.SymbolMarket) xdecimal.Decimal { return m.Index })
}

// PriceLast returns symbol's current last (matching) price.
func (s *Store) PriceLast(symbol string) (xdecimal.Decimal, error) {
	return s.priceField(symbol, func(m model.SymbolMarket) xdecimal.Decimal { return m.Last })
}

// PriceSettlement returns symbol's last observed funding rate.
func (s *Store) PriceSettlement(symbol string) (xdecimal.Decimal, error) {
	return s.priceField(symbol, func(m model.SymbolMarket) xdecimal.Decimal { return m.Settlement })
}

// TimeSettlement returns the settlement time for symbol's last observed
// funding rate (funding event time plus 8 hours).
func (s *Store) TimeSettlement(symbol string) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, err := s.symbolLocked(symbol)
	if err != nil {
		return time.Time{}, err
	}
	return sp.Market.SettlementTime, nil
}

func (s *Store) priceField(symbol string, get func(model.SymbolMarket) xdecimal.Decimal) (xdecimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, err := s.symbolLocked(symbol)
	if err != nil {
		return xdecimal.Zero, err
	}
	return get(sp.Market), nil
}

// Leverage returns symbol's current leverage.
func (s *Store) Leverage(symbol string) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, err := s.symbolLocked(symbol)
	if err != nil {
		return 0, err
	}
	return sp.Leverage, nil
}

// LeverageSet changes symbol's leverage. It performs no margin re-check:
// raising leverage immediately frees margin, lowering it may push
// cash_available negative without triggering liquidation — the simulation
// does not model a liquidation flow.
func (s *Store) LeverageSet(symbol string, leverage uint32) error {
	if leverage < 1 {
		return fmt.Errorf("store: leverage_set %s: %w", symbol, model.ErrInvalidLeverage)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, err := s.symbolLocked(symbol)
	if err != nil {
		return err
	}
	sp.Leverage = leverage
	return nil
}

func (s *Store) positionSide(symbol string, side model.TradeSide) (model.Position, *model.SymbolPosition, error) {
	sp, err := s.symbolLocked(symbol)
	if err != nil {
		return model.Position{}, nil, err
	}
	return *sp.Position(side), sp, nil
}

// Position returns a cloned snapshot of symbol's position on side.
func (s *Store) Position(symbol string, side model.TradeSide) (model.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, _, err := s.positionSide(symbol, side)
	return pos, err
}

// LongSize returns symbol's current long position size.
func (s *Store) LongSize(symbol string) (xdecimal.Decimal, error) {
	return s.sideSize(symbol, model.SideLong)
}

// ShortSize returns symbol's current short position size.
func (s *Store) ShortSize(symbol string) (xdecimal.Decimal, error) {
	return s.sideSize(symbol, model.SideShort)
}

func (s *Store) sideSize(symbol string, side model.TradeSide) (xdecimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, _, err := s.positionSide(symbol, side)
	if err != nil {
		return xdecimal.Zero, err
	}
	return pos.Size, nil
}

// LongPrice returns symbol's current long weighted-average entry price.
func (s *Store) LongPrice(symbol string) (xdecimal.Decimal, error) {
	return s.sidePrice(symbol, model.SideLong)
}

// ShortPrice returns symbol's current short weighted-average entry price.
func (s *Store) ShortPrice(symbol string) (xdecimal.Decimal, error) {
	return s.sidePrice(symbol, model.SideShort)
}

func (s *Store) sidePrice(symbol string, side model.TradeSide) (xdecimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, _, err := s.positionSide(symbol, side)
	if err != nil {
		return xdecimal.Zero, err
	}
	return pos.Price, nil
}

// LongMargin returns symbol's current long position margin.
func (s *Store) LongMargin(symbol string) (xdecimal.Decimal, error) {
	return s.sideMargin(symbol, model.SideLong)
}

// ShortMargin returns symbol's current short position margin.
func (s *Store) ShortMargin(symbol string) (xdecimal.Decimal, error) {
	return s.sideMargin(symbol, model.SideShort)
}

func (s *Store) sideMargin(symbol string, side model.TradeSide) (xdecimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, sp, err := s.positionSide(symbol, side)
	if err != nil {
		return xdecimal.Zero, err
	}
	return pos.Margin(sp.Leverage), nil
}

// LongPnL returns symbol's current long floating PnL against mark.
func (s *Store) LongPnL(symbol string) (xdecimal.Decimal, error) {
	return s.sidePnL(symbol, model.SideLong)
}

// ShortPnL returns symbol's current short floating PnL against mark.
func (s *Store) ShortPnL(symbol string) (xdecimal.Decimal, error) {
	return s.sidePnL(symbol, model.SideShort)
}

func (s *Store) sidePnL(symbol string, side model.TradeSide) (xdecimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, sp, err := s.positionSide(symbol, side)
	if err != nil {
		return xdecimal.Zero, err
	}
	return pos.PnL(sp.Market.Mark), nil
}

// LongSizeAvailable returns symbol's long size minus size frozen by live
// reduce-only close orders.
func (s *Store) LongSizeAvailable(symbol string) (xdecimal.Decimal, error) {
	return s.sizeAggregate(symbol, (*model.SymbolPosition).LongSizeAvailable)
}

// LongSizeFrozen returns symbol's long size held by live reduce-only close orders.
func (s *Store) LongSizeFrozen(symbol string) (xdecimal.Decimal, error) {
	return s.sizeAggregate(symbol, (*model.SymbolPosition).LongSizeFrozen)
}

// ShortSizeAvailable returns symbol's short size minus size frozen by live
// reduce-only close orders.
func (s *Store) ShortSizeAvailable(symbol string) (xdecimal.Decimal, error) {
	return s.sizeAggregate(symbol, (*model.SymbolPosition).ShortSizeAvailable)
}

// ShortSizeFrozen returns symbol's short size held by live reduce-only close orders.
func (s *Store) ShortSizeFrozen(symbol string) (xdecimal.Decimal, error) {
	return s.sizeAggregate(symbol, (*model.SymbolPosition).ShortSizeFrozen)
}

func (s *Store) sizeAggregate(symbol string, get func(*model.SymbolPosition) xdecimal.Decimal) (xdecimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, err := s.symbolLocked(symbol)
	if err != nil {
		return xdecimal.Zero, err
	}
	return get(sp), nil
}

// Order returns one live order by symbol and id.
func (s *Store) Order(symbol, id string) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, err := s.symbolLocked(symbol)
	if err != nil {
		return model.Order{}, err
	}
	o, ok := sp.Orders.Get(id)
	if !ok {
		return model.Order{}, fmt.Errorf("store: order %s/%s: %w", symbol, id, model.ErrOrderNotFound)
	}
	return o.Clone(), nil
}

// Orders returns every live order for symbol in insertion order.
func (s *Store) Orders(symbol string) ([]model.Order, error) {
	return s.filterOrders(symbol, func(*model.Order) bool { return true })
}

// OrdersLongOpen returns symbol's live long, non-reduce-only orders.
func (s *Store) OrdersLongOpen(symbol string) ([]model.Order, error) {
	return s.filterOrders(symbol, sideOpenFilter(model.SideLong))
}

// OrdersLongClose returns symbol's live long, reduce-only orders.
func (s *Store) OrdersLongClose(symbol string) ([]model.Order, error) {
	return s.filterOrders(symbol, sideCloseFilter(model.SideLong))
}

// OrdersShortOpen returns symbol's live short, non-reduce-only orders.
func (s *Store) OrdersShortOpen(symbol string) ([]model.Order, error) {
	return s.filterOrders(symbol, sideOpenFilter(model.SideShort))
}

// OrdersShortClose returns symbol's live short, reduce-only orders.
func (s *Store) OrdersShortClose(symbol string) ([]model.Order, error) {
	return s.filterOrders(symbol, sideCloseFilter(model.SideShort))
}

func sideOpenFilter(side model.TradeSide) func(*model.Order) bool {
	return func(o *model.Order) bool { return o.Side == side && !o.ReduceOnly }
}

func sideCloseFilter(side model.TradeSide) func(*model.Order) bool {
	return func(o *model.Order) bool { return o.Side == side && o.ReduceOnly }
}

func (s *Store) filterOrders(symbol string, pred func(*model.Order) bool) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, err := s.symbolLocked(symbol)
	if err != nil {
		return nil, err
	}
	return sp.Orders.Filter(pred), nil
}
