package store

import (
	"time"

	"destiny/internal/model"
	"destiny/internal/xdecimal"
)

// ApplyFunding records an observed funding rate. settlement_time is the
// funding event's own time plus 8 hours, matching the exchange convention
// the archive data follows.
func (s *Store) ApplyFunding(symbol string, rate xdecimal.Decimal, fundingTime time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, err := s.symbolLocked(symbol)
	if err != nil {
		return err
	}
	sp.Market.Settlement = rate
	sp.Market.SettlementTime = fundingTime.Add(8 * time.Hour)
	return nil
}

// SetMark writes symbol's mark price for this tick.
func (s *Store) SetMark(symbol string, price xdecimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, err := s.symbolLocked(symbol)
	if err != nil {
		return err
	}
	sp.Market.Mark = price
	return nil
}

// SetIndex writes symbol's index price for this tick.
func (s *Store) SetIndex(symbol string, price xdecimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, err := s.symbolLocked(symbol)
	if err != nil {
		return err
	}
	sp.Market.Index = price
	return nil
}

// SetLastAndCross writes symbol's last price and runs the matcher against
// it in one atomic step. It returns the orders that filled, cloned, so the
// caller can emit on_order callbacks after releasing the store — the store
// itself never calls out to a strategy while its mutex is held.
func (s *Store) SetLastAndCross(symbol string, price xdecimal.Decimal) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, err := s.symbolLocked(symbol)
	if err != nil {
		return nil, err
	}
	sp.Market.Last = price
	sp.Market.ObservationTime = s.tradeTime
	return s.cross(sp)
}
