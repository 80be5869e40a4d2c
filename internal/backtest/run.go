package backtest

import (
	"fmt"
	"log/slog"

	"destiny/internal/engine"
	"destiny/internal/store"
)

// Run validates cfg, constructs a store with zero positions and the
// configured cash and fee schedule, and drives strategy through the full
// init/start/tick/stop lifecycle against history cached under cacheDir. It
// returns the first fatal error: a bad config, an uninitialized-symbol
// check, or a history decode failure. Strategy callback errors are logged
// by the engine and never abort the run.
func Run(cfg Config, strategy engine.Strategy, cacheDir string, logger *slog.Logger) error {
	cfg, err := cfg.normalize()
	if err != nil {
		return err
	}

	s := store.New(cfg.Cash, cfg.FeeRateTaker, cfg.FeeRateMaker)
	eng := engine.New(s, strategy, cacheDir, logger)

	if err := eng.Run(cfg.Begin, cfg.End); err != nil {
		return fmt.Errorf("backtest: %w", err)
	}
	return nil
}
