package config

import (
	"stocksphere-signal/pkg/config"
)

// Guardian holds the configuration for the Guardian news API client.
type Guardian struct {
	BaseURL             string `mapstructure:"base_url"`
	APIKey              string `mapstructure:"api_key"`
	PageSize            int    `mapstructure:"page_size"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// RSS holds the configuration for the RSS news provider.
type RSS struct {
	FeedURL          string `mapstructure:"feed_url"`
	Query            string `mapstructure:"query"`
	MaxItems         int    `mapstructure:"max_items"`
	FetchFullContent bool   `mapstructure:"fetch_full_content"`
}

// News selects and tunes the news source.
type News struct {
	Provider string `mapstructure:"provider"` // "guardian" or "rss"
	CacheTTL string `mapstructure:"cache_ttl"`
}

// Technical selects the technical data source.
type Technical struct {
	Provider   string `mapstructure:"provider"` // "random" or "candles"
	CandleDays int    `mapstructure:"candle_days"`
}

// Predictor tunes the prediction orchestrator.
type Predictor struct {
	DefaultLookbackHours int `mapstructure:"default_lookback_hours"`
	MaxConcurrentSymbols int `mapstructure:"max_concurrent_symbols"`
}

// MonteCarlo tunes the price distribution simulator.
type MonteCarlo struct {
	Simulations int `mapstructure:"simulations"`
	Days        int `mapstructure:"days"`
}

// Watchlist configures the scheduled portfolio scan.
type Watchlist struct {
	Enabled       bool     `mapstructure:"enabled"`
	CronSchedule  string   `mapstructure:"cron_schedule"`
	Symbols       []string `mapstructure:"symbols"`
	LookbackHours int      `mapstructure:"lookback_hours"`
}

// Config holds the full configuration for the signal service.
type Config struct {
	App        config.App      `mapstructure:"app"`
	Logger     config.Logger   `mapstructure:"logger"`
	Database   config.Database `mapstructure:"database"`
	Redis      config.Redis    `mapstructure:"redis"`
	API        config.API      `mapstructure:"api"`
	Telegram   config.Telegram `mapstructure:"telegram"`
	Guardian   Guardian        `mapstructure:"guardian"`
	RSS        RSS             `mapstructure:"rss"`
	News       News            `mapstructure:"news"`
	Technical  Technical       `mapstructure:"technical"`
	Predictor  Predictor       `mapstructure:"predictor"`
	MonteCarlo MonteCarlo      `mapstructure:"monte_carlo"`
	Watchlist  Watchlist       `mapstructure:"watchlist"`
}

// Load loads the signal service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
