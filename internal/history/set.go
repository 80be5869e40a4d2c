package history

import "time"

// Set is the four archive streams one symbol's refresh step reads each tick:
// funding rate, last-price klines, index-price klines, mark-price klines.
type Set struct {
	FundingRate *Stream
	Last        *Stream
	Index       *Stream
	Mark        *Stream
}

// OpenSet starts all four streams for symbol over [begin, end].
func OpenSet(cacheDir, symbol string, begin, end time.Time) *Set {
	return &Set{
		FundingRate: Open(cacheDir, symbol, KindFundingRate, begin, end),
		Last:        Open(cacheDir, symbol, KindKlines, begin, end),
		Index:       Open(cacheDir, symbol, KindIndexPriceKlines, begin, end),
		Mark:        Open(cacheDir, symbol, KindMarkPriceKlines, begin, end),
	}
}

// Close shuts down every stream in the set.
func (s *Set) Close() {
	s.FundingRate.Close()
	s.Last.Close()
	s.Index.Close()
	s.Mark.Close()
}
