// Command backtest is a composition-root example, not a CLI deliverable:
// the core is a library (internal/backtest, internal/engine) meant to be
// embedded by a caller that supplies its own strategy. This wires config,
// logging, the archival downloader, and the backtest driver together
// around a minimal example strategy that opens one long position on the
// first tick with a mark price and holds it for the run.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"destiny/internal/backtest"
	"destiny/internal/config"
	"destiny/internal/download"
	"destiny/internal/engine"
	"destiny/internal/history"
	"destiny/internal/logging"
	"destiny/internal/metastore"
	"destiny/internal/model"
	"destiny/internal/xdecimal"
)

func main() {
	cfgPath := "configs/config.yaml"
	if p := os.Getenv("DESTINY_CONFIG"); p != "" {
		cfgPath = p
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("failed to load config", "error", err, "path", cfgPath)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	meta, err := metastore.Open(cfg.Cache.Dir + "/metastore.db")
	if err != nil {
		logger.Error("failed to open metastore", "error", err)
		os.Exit(1)
	}
	defer meta.Close()

	fetcher := download.New(cfg.Download.BaseURL, cfg.Cache.Dir, cfg.Download.Timeout, meta)
	strat := &buyAndHold{symbol: "ETHUSDT"}

	if err := fetchSymbolHistory(fetcher, strat.symbol, cfg.Backtest.Begin, cfg.Backtest.End); err != nil {
		logger.Error("failed to fetch history", "error", err)
		os.Exit(1)
	}

	btCfg := backtest.Config{
		Begin:        cfg.Backtest.Begin,
		End:          cfg.Backtest.End,
		Cash:         xdecimal.NewFromFloat(cfg.Backtest.Cash),
		FeeRateTaker: xdecimal.NewFromFloat(cfg.Backtest.FeeRateTaker),
		FeeRateMaker: xdecimal.NewFromFloat(cfg.Backtest.FeeRateMaker),
		SlippageRate: xdecimal.NewFromFloat(cfg.Backtest.SlippageRate),
	}

	if err := backtest.Run(btCfg, strat, cfg.Cache.Dir, logger); err != nil {
		logger.Error("backtest run failed", "error", err)
		os.Exit(1)
	}

	logger.Info("backtest complete", "fills", strat.fills)
}

func fetchSymbolHistory(fetcher *download.Fetcher, symbol string, begin, end time.Time) error {
	kinds := []history.Kind{
		history.KindFundingRate,
		history.KindKlines,
		history.KindIndexPriceKlines,
		history.KindMarkPriceKlines,
	}
	for _, kind := range kinds {
		if err := fetcher.Fetch(symbol, kind, begin, end); err != nil {
			return fmt.Errorf("fetch %s %s: %w", symbol, kind, err)
		}
	}
	return nil
}

// buyAndHold opens one long position on the first minute with a mark price
// and never trades again, as a minimal illustration of the Strategy
// interface.
type buyAndHold struct {
	engine.BaseStrategy
	symbol    string
	submitted bool
	fills     int
}

func (s *buyAndHold) OnInit(h engine.Handle) error {
	return h.SymbolInit(s.symbol, model.SymbolRule{
		PriceMin:  xdecimal.NewFromFloat(0.01),
		PriceMax:  xdecimal.NewFromFloat(10000000),
		PriceTick: xdecimal.NewFromFloat(0.01),
		SizeMin:   xdecimal.NewFromFloat(0.001),
		SizeMax:   xdecimal.NewFromFloat(1000),
		SizeTick:  xdecimal.NewFromFloat(0.001),
		AmountMin: xdecimal.NewFromFloat(1),
		OrderMax:  50,
	})
}

func (s *buyAndHold) OnMinutely(h engine.Handle) error {
	if s.submitted {
		return nil
	}
	mark, err := h.PriceMark(s.symbol)
	if err != nil || mark.IsZero() {
		return err
	}
	s.submitted = true
	_, err = h.OpenLongMarket(s.symbol, xdecimal.NewFromFloat(0.1))
	return err
}

func (s *buyAndHold) OnOrder(h engine.Handle, o model.Order) error {
	s.fills++
	return nil
}
