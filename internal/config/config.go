// Package config defines all configuration for the backtest driver. Config
// is loaded from a YAML file (default: configs/config.yaml) with fields
// overridable via DESTINY_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level configuration. Maps directly to the YAML file structure.
type Config struct {
	Backtest BacktestConfig `mapstructure:"backtest"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Download DownloadConfig `mapstructure:"download"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// BacktestConfig is the run configuration: simulated time range, starting
// cash, and the fee/slippage schedule applied at crossing.
type BacktestConfig struct {
	Begin        time.Time `mapstructure:"begin"`
	End          time.Time `mapstructure:"end"`
	Cash         float64   `mapstructure:"cash"`
	FeeRateTaker float64   `mapstructure:"fee_rate_taker"`
	FeeRateMaker float64   `mapstructure:"fee_rate_maker"`
	SlippageRate float64   `mapstructure:"slippage_rate"`
}

// CacheConfig points at the archival CSV history directory.
type CacheConfig struct {
	Dir string `mapstructure:"dir"`
}

// DownloadConfig tunes the archival CSV fetcher.
type DownloadConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the documented configuration defaults: cash=1000,
// fee_rate_taker=fee_rate_maker=0.0005, slippage_rate=0.01.
func Default() Config {
	return Config{
		Backtest: BacktestConfig{
			Cash:         1000,
			FeeRateTaker: 0.0005,
			FeeRateMaker: 0.0005,
			SlippageRate: 0.01,
		},
		Download: DownloadConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// Load reads config from a YAML file with env var overrides, layered over
// Default(). Missing optional fields keep their default value.
func Load(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	setDefaults(v, cfg)
	v.SetConfigFile(path)
	v.SetEnvPrefix("DESTINY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("backtest.cash", cfg.Backtest.Cash)
	v.SetDefault("backtest.fee_rate_taker", cfg.Backtest.FeeRateTaker)
	v.SetDefault("backtest.fee_rate_maker", cfg.Backtest.FeeRateMaker)
	v.SetDefault("backtest.slippage_rate", cfg.Backtest.SlippageRate)
	v.SetDefault("download.timeout", cfg.Download.Timeout)
}

// Validate checks all required fields and value ranges, mirroring the
// checks the backtest driver performs again at construction so a caller
// gets the same error whether it misconfigures the YAML or calls the
// driver directly with a hand-built Config.
func (c *Config) Validate() error {
	if c.Backtest.Begin.IsZero() {
		return fmt.Errorf("backtest.begin is required")
	}
	if c.Backtest.End.IsZero() {
		return fmt.Errorf("backtest.end is required")
	}
	if !c.Backtest.Begin.Truncate(time.Minute).Before(c.Backtest.End.Truncate(time.Minute)) {
		return fmt.Errorf("backtest.begin must be before backtest.end")
	}
	if c.Backtest.Cash < 0 {
		return fmt.Errorf("backtest.cash must be >= 0")
	}
	if c.Backtest.FeeRateTaker < 0 {
		return fmt.Errorf("backtest.fee_rate_taker must be >= 0")
	}
	if c.Backtest.FeeRateMaker < 0 {
		return fmt.Errorf("backtest.fee_rate_maker must be >= 0")
	}
	if c.Backtest.SlippageRate < 0 {
		return fmt.Errorf("backtest.slippage_rate must be >= 0")
	}
	if c.Cache.Dir == "" {
		return fmt.Errorf("cache.dir is required")
	}
	return nil
}
