package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the collector.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Journal JournalConfig `yaml:"journal"`
	Clock   ClockConfig   `yaml:"clock"`
}

// APIConfig holds the upstream endpoints and HTTP settings.
type APIConfig struct {
	MarketURL   string        `yaml:"market_url"`
	ForecastURL string        `yaml:"forecast_url"`
	EnsembleURL string        `yaml:"ensemble_url"`
	Timeout     time.Duration `yaml:"timeout"`
}

// JournalConfig holds the observation log settings.
type JournalConfig struct {
	Path string `yaml:"path"`
}

// ClockConfig holds the reference clock settings. The timezone decides
// what "today" means for schedules, date tokens, and timestamps.
type ClockConfig struct {
	Timezone string `yaml:"timezone"`
}

// Location resolves the configured reference timezone.
func (c *ClockConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
