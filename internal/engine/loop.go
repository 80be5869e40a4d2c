package engine

import (
	"fmt"
	"log/slog"
	"time"

	"destiny/internal/csvdata"
	"destiny/internal/history"
	"destiny/internal/model"
	"destiny/internal/store"
)

// Engine owns the store and drives the minute-tick loop against it. The
// loop itself holds no lock on the store; every call into the store
// acquires and releases its own mutex, so a strategy callback can safely
// call back into the handle without risking a self-deadlock.
type Engine struct {
	store    *store.Store
	handle   Handle
	strategy Strategy
	cacheDir string
	logger   *slog.Logger
}

// New builds an Engine over an already-constructed store.
func New(s *store.Store, strategy Strategy, cacheDir string, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:    s,
		handle:   newHandle(s),
		strategy: strategy,
		cacheDir: cacheDir,
		logger:   logger.With("component", "engine"),
	}
}

// Run executes the full init -> start -> tick loop -> stop lifecycle over
// [begin, end]. Strategy callback errors are logged and swallowed; a
// history decode failure or a store invariant violation aborts the run and
// is returned to the caller.
func (e *Engine) Run(begin, end time.Time) error {
	e.dispatch("on_init", e.strategy.OnInit)

	if len(e.store.Symbols()) == 0 {
		return fmt.Errorf("engine: no symbols initialized")
	}

	e.dispatch("on_start", e.strategy.OnStart)

	streams := make(map[string]*history.Set, len(e.store.Symbols()))
	for _, symbol := range e.store.Symbols() {
		streams[symbol] = history.OpenSet(e.cacheDir, symbol, begin, end)
	}
	defer func() {
		for _, set := range streams {
			set.Close()
		}
	}()

	for t := begin; !t.After(end); t = t.Add(time.Minute) {
		e.store.SetTradeTime(t)

		for _, symbol := range e.store.Symbols() {
			if err := e.refreshSymbol(symbol, streams[symbol], t); err != nil {
				return fmt.Errorf("engine: refresh %s at %s: %w", symbol, t, err)
			}
		}

		if t.Hour() == 0 && t.Minute() == 0 {
			e.dispatch("on_daily", e.strategy.OnDaily)
		}
		if t.Minute() == 0 {
			e.dispatch("on_hourly", e.strategy.OnHourly)
		}
		e.dispatch("on_minutely", e.strategy.OnMinutely)
	}

	e.dispatch("on_stop", e.strategy.OnStop)
	return nil
}

// refreshSymbol runs the fixed per-symbol refresh order for one tick:
// funding, then mark, then index, then last (followed by the matcher and
// the on_kline/on_order callbacks it produces).
func (e *Engine) refreshSymbol(symbol string, streams *history.Set, t time.Time) error {
	if rec, ok, err := streams.FundingRate.Take(t); err != nil {
		return err
	} else if ok {
		fr := rec.(csvdata.FundingRate)
		if err := e.store.ApplyFunding(symbol, fr.Rate, fr.FundingTime); err != nil {
			return err
		}
	}

	priceAt := t.Add(-time.Minute)

	if rec, ok, err := streams.Mark.Take(priceAt); err != nil {
		return err
	} else if ok {
		if err := e.store.SetMark(symbol, rec.(csvdata.Kline).Close); err != nil {
			return err
		}
	}

	if rec, ok, err := streams.Index.Take(priceAt); err != nil {
		return err
	} else if ok {
		if err := e.store.SetIndex(symbol, rec.(csvdata.Kline).Close); err != nil {
			return err
		}
	}

	rec, ok, err := streams.Last.Take(priceAt)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	kline := rec.(csvdata.Kline)

	filled, err := e.store.SetLastAndCross(symbol, kline.Close)
	if err != nil {
		return err
	}

	touchedSides := make(map[model.TradeSide]bool, 2)
	for _, o := range filled {
		order := o
		e.dispatch("on_order", func(h Handle) error { return e.strategy.OnOrder(h, order) })
		touchedSides[order.Side] = true
	}
	for _, side := range []model.TradeSide{model.SideLong, model.SideShort} {
		if !touchedSides[side] {
			continue
		}
		pos, err := e.store.Position(symbol, side)
		if err != nil {
			return err
		}
		s := side
		e.dispatch("on_position", func(h Handle) error { return e.strategy.OnPosition(h, symbol, s, pos) })
	}

	e.dispatch("on_kline", func(h Handle) error { return e.strategy.OnKline(h, symbol, kline) })
	return nil
}

// dispatch invokes a strategy callback and logs, rather than propagates,
// any error it returns.
func (e *Engine) dispatch(name string, fn func(h Handle) error) {
	if err := fn(e.handle); err != nil {
		e.logger.Error("strategy callback failed", "callback", name, "time", e.store.Time(), "error", err)
	}
}
