// Package backtest wires a store, an engine, and a strategy into a single
// runnable backtest: it validates the run configuration, constructs the
// store with the configured starting cash and fee schedule, and drives the
// engine loop from begin to end.
package backtest

import (
	"fmt"
	"time"

	"destiny/internal/xdecimal"
)

// Config is the run configuration validated at construction: truncated
// begin/end, starting cash, and the fee/slippage schedule. slippage_rate is
// accepted and validated but never applied — no source this was built from
// defines how it would enter the fill price, so it is carried as reserved.
type Config struct {
	Begin time.Time
	End   time.Time

	Cash         xdecimal.Decimal
	FeeRateTaker xdecimal.Decimal
	FeeRateMaker xdecimal.Decimal
	SlippageRate xdecimal.Decimal
}

// DefaultConfig returns the documented defaults: cash=1000,
// fee_rate_taker=fee_rate_maker=0.0005, slippage_rate=0.01. Begin and End
// have no default and must be set by the caller.
func DefaultConfig() Config {
	return Config{
		Cash:         xdecimal.NewFromFloat(1000),
		FeeRateTaker: xdecimal.NewFromFloat(0.0005),
		FeeRateMaker: xdecimal.NewFromFloat(0.0005),
		SlippageRate: xdecimal.NewFromFloat(0.01),
	}
}

// normalize truncates Begin and End to the minute and checks every
// invariant the driver requires before it will construct a store.
func (c Config) normalize() (Config, error) {
	c.Begin = c.Begin.Truncate(time.Minute)
	c.End = c.End.Truncate(time.Minute)

	if !c.Begin.Before(c.End) {
		return Config{}, fmt.Errorf("backtest: begin %s must be before end %s", c.Begin, c.End)
	}
	if c.Cash.Sign() < 0 {
		return Config{}, fmt.Errorf("backtest: cash %s must be >= 0", c.Cash)
	}
	if c.FeeRateTaker.Sign() < 0 {
		return Config{}, fmt.Errorf("backtest: fee_rate_taker %s must be >= 0", c.FeeRateTaker)
	}
	if c.FeeRateMaker.Sign() < 0 {
		return Config{}, fmt.Errorf("backtest: fee_rate_maker %s must be >= 0", c.FeeRateMaker)
	}
	if c.SlippageRate.Sign() < 0 {
		return Config{}, fmt.Errorf("backtest: slippage_rate %s must be >= 0", c.SlippageRate)
	}
	return c, nil
}
