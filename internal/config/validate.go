package config

import "errors"

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.API.MarketURL == "" {
		return errors.New("api.market_url is required")
	}
	if c.API.ForecastURL == "" {
		return errors.New("api.forecast_url is required")
	}
	if c.API.EnsembleURL == "" {
		return errors.New("api.ensemble_url is required")
	}
	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be positive")
	}

	if c.Journal.Path == "" {
		return errors.New("journal.path is required")
	}

	if c.Clock.Timezone == "" {
		return errors.New("clock.timezone is required")
	}
	if _, err := c.Clock.Location(); err != nil {
		return err
	}

	return nil
}
