// Package engine dispatches the time-driven event loop against the market
// store: it tick-advances simulated time, refreshes each symbol's prices,
// runs the matcher, and fires the strategy lifecycle callbacks in the fixed
// order the loop guarantees.
package engine

import (
	"destiny/internal/csvdata"
	"destiny/internal/model"
)

// Strategy is the set of lifecycle callbacks the loop dispatches. Every
// method defaults to a no-op through BaseStrategy; implementations embed it
// and override only the callbacks they care about.
type Strategy interface {
	OnInit(h Handle) error
	OnStart(h Handle) error
	OnStop(h Handle) error
	OnDaily(h Handle) error
	OnHourly(h Handle) error
	OnMinutely(h Handle) error
	OnKline(h Handle, symbol string, k csvdata.Kline) error
	OnOrder(h Handle, o model.Order) error
	OnPosition(h Handle, symbol string, side model.TradeSide, p model.Position) error
}

// BaseStrategy gives every callback a no-op default. Strategies embed it and
// override only what they need.
type BaseStrategy struct{}

func (BaseStrategy) OnInit(Handle) error     { return nil }
func (BaseStrategy) OnStart(Handle) error    { return nil }
func (BaseStrategy) OnStop(Handle) error     { return nil }
func (BaseStrategy) OnDaily(Handle) error    { return nil }
func (BaseStrategy) OnHourly(Handle) error   { return nil }
func (BaseStrategy) OnMinutely(Handle) error { return nil }

func (BaseStrategy) OnKline(Handle, string, csvdata.Kline) error { return nil }
func (BaseStrategy) OnOrder(Handle, model.Order) error           { return nil }
func (BaseStrategy) OnPosition(Handle, string, model.TradeSide, model.Position) error {
	return nil
}

var _ Strategy = BaseStrategy{}
