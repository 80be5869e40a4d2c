package store

import (
	"fmt"
	"time"

	"destiny/internal/idgen"
	"destiny/internal/model"
	"destiny/internal/xdecimal"
)

// Open submits a new order that increases a position. side/orderType select
// one of the four open operations (long/short x limit/market); price is
// ignored for market orders. The validation pipeline below runs in a fixed
// order and aborts on the first failure: no partial state is ever written.
func (s *Store) Open(symbol string, side model.TradeSide, orderType model.OrderType, price, size xdecimal.Decimal, now time.Time) (string, error) {
	return s.submit(symbol, side, orderType, price, size, false, now)
}

// Close submits a new reduce-only order that decreases a position.
func (s *Store) Close(symbol string, side model.TradeSide, orderType model.OrderType, price, size xdecimal.Decimal, now time.Time) (string, error) {
	return s.submit(symbol, side, orderType, price, size, true, now)
}

func (s *Store) submit(symbol string, side model.TradeSide, orderType model.OrderType, price, size xdecimal.Decimal, reduceOnly bool, now time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, err := s.symbolLocked(symbol)
	if err != nil {
		return "", err
	}
	rule := sp.Rule

	quantizedSize := size.QuantizeTick(rule.SizeTick)
	if !quantizedSize.Equal(size) {
		return "", fmt.Errorf("store: submit %s: size %s is not a multiple of size_tick %s: %w",
			symbol, size, rule.SizeTick, model.ErrRuleViolation)
	}
	if size.LessThan(rule.SizeMin) || size.GreaterThan(rule.SizeMax) {
		return "", fmt.Errorf("store: submit %s: size %s outside [%s, %s]: %w",
			symbol, size, rule.SizeMin, rule.SizeMax, model.ErrRuleViolation)
	}

	if orderType == model.OrderTypeLimit {
		quantizedPrice := price.QuantizeTick(rule.PriceTick)
		if !quantizedPrice.Equal(price) {
			return "", fmt.Errorf("store: submit %s: price %s is not a multiple of price_tick %s: %w",
				symbol, price, rule.PriceTick, model.ErrRuleViolation)
		}
		if price.LessThan(rule.PriceMin) || price.GreaterThan(rule.PriceMax) {
			return "", fmt.Errorf("store: submit %s: price %s outside [%s, %s]: %w",
				symbol, price, rule.PriceMin, rule.PriceMax, model.ErrRuleViolation)
		}
	} else {
		price = xdecimal.Zero
	}

	if !reduceOnly {
		refPrice := price
		if orderType == model.OrderTypeMarket {
			refPrice = sp.Market.Mark
		}
		amount := size.Mul(refPrice)
		if amount.LessThan(rule.AmountMin) {
			return "", fmt.Errorf("store: submit %s: amount %s below minimum %s: %w",
				symbol, amount, rule.AmountMin, model.ErrRuleViolation)
		}

		margin := amount.Div(xdecimal.NewFromInt(int64(sp.Leverage)))
		if s.account.CashAvailable().LessThan(margin) {
			return "", fmt.Errorf("store: submit %s: margin %s exceeds available cash %s: %w",
				symbol, margin, s.account.CashAvailable(), model.ErrInsufficientCash)
		}
	} else {
		var available xdecimal.Decimal
		if side == model.SideLong {
			available = sp.LongSizeAvailable()
		} else {
			available = sp.ShortSizeAvailable()
		}
		if available.LessThan(size) {
			return "", fmt.Errorf("store: submit %s: close size %s exceeds available %s: %w",
				symbol, size, available, model.ErrInsufficientSize)
		}
	}

	if rule.OrderMax > 0 && sp.Orders.Len() >= rule.OrderMax {
		return "", fmt.Errorf("store: submit %s: live order count at limit %d: %w",
			symbol, rule.OrderMax, model.ErrRuleViolation)
	}

	id := idgen.GenID()
	sp.Orders.Insert(&model.Order{
		ID:         id,
		Symbol:     symbol,
		Type:       orderType,
		Side:       side,
		ReduceOnly: reduceOnly,
		Status:     model.OrderStatusCreated,
		Price:      price,
		Size:       size,
		DealPrice:  xdecimal.Zero,
		DealSize:   xdecimal.Zero,
		DealFee:    xdecimal.Zero,
		CreateTime: now,
	})

	if err := checkInvariants(sp); err != nil {
		sp.Orders.Delete(id)
		return "", err
	}
	return id, nil
}

// OrderClose cancels a single live order. An absent id is silently ignored.
func (s *Store) OrderClose(symbol, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, err := s.symbolLocked(symbol)
	if err != nil {
		return err
	}
	sp.Orders.Delete(id)
	return nil
}

// OrderCancelMany cancels a batch of live orders. Absent ids are silently ignored.
func (s *Store) OrderCancelMany(symbol string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, err := s.symbolLocked(symbol)
	if err != nil {
		return err
	}
	for _, id := range ids {
		sp.Orders.Delete(id)
	}
	return nil
}
