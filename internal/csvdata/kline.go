package csvdata

import (
	"fmt"
	"strconv"
	"time"

	"destiny/internal/timeutil"
	"destiny/internal/xdecimal"
)

// Kline is one decoded row of a klines / markPriceKlines / indexPriceKlines
// monthly archive file: open_ms, open, high, low, close, volume, close_ms,
// quote_volume, trades, taker_base, taker_quote, ignore.
type Kline struct {
	OpenTime    time.Time
	Open        xdecimal.Decimal
	High        xdecimal.Decimal
	Low         xdecimal.Decimal
	Close       xdecimal.Decimal
	Size        xdecimal.Decimal
	CloseTime   time.Time
	QuoteVolume xdecimal.Decimal
	Trades      int64
	BuySize     xdecimal.Decimal
	BuyQuote    xdecimal.Decimal
}

// DateTime returns the bar's open time, the kline's primary timestamp.
func (k Kline) DateTime() time.Time { return k.OpenTime }

// DecodeKline parses one headerless kline CSV row.
func DecodeKline(row []string) (Kline, error) {
	if len(row) < 11 {
		return Kline{}, fmt.Errorf("csvdata: decode kline: expected at least 11 columns, got %d", len(row))
	}

	openMS, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return Kline{}, fmt.Errorf("csvdata: decode kline: open_time: %w", err)
	}
	closeMS, err := strconv.ParseInt(row[6], 10, 64)
	if err != nil {
		return Kline{}, fmt.Errorf("csvdata: decode kline: close_time: %w", err)
	}

	open, err := xdecimal.Parse(row[1])
	if err != nil {
		return Kline{}, fmt.Errorf("csvdata: decode kline: open: %w", err)
	}
	high, err := xdecimal.Parse(row[2])
	if err != nil {
		return Kline{}, fmt.Errorf("csvdata: decode kline: high: %w", err)
	}
	low, err := xdecimal.Parse(row[3])
	if err != nil {
		return Kline{}, fmt.Errorf("csvdata: decode kline: low: %w", err)
	}
	closePrice, err := xdecimal.Parse(row[4])
	if err != nil {
		return Kline{}, fmt.Errorf("csvdata: decode kline: close: %w", err)
	}
	size, err := xdecimal.Parse(row[5])
	if err != nil {
		return Kline{}, fmt.Errorf("csvdata: decode kline: volume: %w", err)
	}
	quoteVolume, err := xdecimal.Parse(row[7])
	if err != nil {
		return Kline{}, fmt.Errorf("csvdata: decode kline: quote_volume: %w", err)
	}
	trades, err := strconv.ParseInt(row[8], 10, 64)
	if err != nil {
		return Kline{}, fmt.Errorf("csvdata: decode kline: trades: %w", err)
	}
	buySize, err := xdecimal.Parse(row[9])
	if err != nil {
		return Kline{}, fmt.Errorf("csvdata: decode kline: taker_buy_base: %w", err)
	}
	buyQuote, err := xdecimal.Parse(row[10])
	if err != nil {
		return Kline{}, fmt.Errorf("csvdata: decode kline: taker_buy_quote: %w", err)
	}

	return Kline{
		OpenTime:    timeutil.TruncMinute(time.UnixMilli(openMS).UTC()),
		Open:        open,
		High:        high,
		Low:         low,
		Close:       closePrice,
		Size:        size,
		CloseTime:   timeutil.TruncMinute(time.UnixMilli(closeMS).UTC()),
		QuoteVolume: quoteVolume,
		Trades:      trades,
		BuySize:     buySize,
		BuyQuote:    buyQuote,
	}, nil
}
