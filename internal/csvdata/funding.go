package csvdata

import (
	"fmt"
	"strconv"
	"time"

	"destiny/internal/timeutil"
	"destiny/internal/xdecimal"
)

// FundingRate is one decoded row of a fundingRate monthly archive file:
// funding_ms, symbol, rate, mark_price.
type FundingRate struct {
	FundingTime time.Time
	Symbol      string
	Rate        xdecimal.Decimal
	MarkPrice   xdecimal.Decimal
}

// DateTime returns the funding event's time, the record's primary timestamp.
func (f FundingRate) DateTime() time.Time { return f.FundingTime }

// DecodeFundingRate parses one headerless funding-rate CSV row.
func DecodeFundingRate(row []string) (FundingRate, error) {
	if len(row) < 4 {
		return FundingRate{}, fmt.Errorf("csvdata: decode funding rate: expected at least 4 columns, got %d", len(row))
	}

	fundingMS, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return FundingRate{}, fmt.Errorf("csvdata: decode funding rate: funding_time: %w", err)
	}
	rate, err := xdecimal.Parse(row[2])
	if err != nil {
		return FundingRate{}, fmt.Errorf("csvdata: decode funding rate: rate: %w", err)
	}
	markPrice, err := xdecimal.Parse(row[3])
	if err != nil {
		return FundingRate{}, fmt.Errorf("csvdata: decode funding rate: mark_price: %w", err)
	}

	return FundingRate{
		FundingTime: timeutil.TruncHour(time.UnixMilli(fundingMS).UTC()),
		Symbol:      row[1],
		Rate:        rate,
		MarkPrice:   markPrice,
	}, nil
}
