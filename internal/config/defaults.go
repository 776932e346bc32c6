package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultMarketURL   = "https://api.elections.kalshi.com/trade-api/v2"
	DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"
	DefaultEnsembleURL = "https://ensemble-api.open-meteo.com/v1/ensemble"
	DefaultAPITimeout  = 10 * time.Second
	DefaultJournalPath = "data_log.json"
	DefaultTimezone    = "America/Los_Angeles"
)

func (c *Config) applyDefaults() {
	if c.API.MarketURL == "" {
		c.API.MarketURL = DefaultMarketURL
	}
	if c.API.ForecastURL == "" {
		c.API.ForecastURL = DefaultForecastURL
	}
	if c.API.EnsembleURL == "" {
		c.API.EnsembleURL = DefaultEnsembleURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	if c.Journal.Path == "" {
		c.Journal.Path = DefaultJournalPath
	}

	if c.Clock.Timezone == "" {
		c.Clock.Timezone = DefaultTimezone
	}
}
