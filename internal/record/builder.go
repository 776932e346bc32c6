package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jshelley/wxmarket-data/internal/cities"
)

// ForecastSource fetches temperature forecasts.
type ForecastSource interface {
	FetchSingle(ctx context.Context, city cities.City, direction cities.Direction) (today, tomorrow float64, err error)
	FetchEnsemble(ctx context.Context, city cities.City, direction cities.Direction) (today, tomorrow []float64, err error)
}

// PriceSource finds live contracts and derives their prices.
type PriceSource interface {
	ListEligibleContracts(ctx context.Context, city cities.City, direction cities.Direction, isToday bool) ([]string, error)
	FetchPrice(ctx context.Context, ticker string) (int, error)
}

// Builder assembles observations from the two upstream clients.
type Builder struct {
	forecasts ForecastSource
	prices    PriceSource
	loc       *time.Location
	now       func() time.Time
}

// NewBuilder creates a Builder. The location is the reference zone
// observation timestamps are localized to.
func NewBuilder(forecasts ForecastSource, prices PriceSource, loc *time.Location) *Builder {
	return &Builder{
		forecasts: forecasts,
		prices:    prices,
		loc:       loc,
		now:       time.Now,
	}
}

// WithClock overrides the builder's wall clock (for tests).
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Build fetches everything for one (city, day) task and correlates it
// into a single observation. Any upstream failure aborts the build;
// partial observations are never produced.
func (b *Builder) Build(ctx context.Context, city cities.City, isToday bool) (Observation, error) {
	highSingleToday, highSingleTomorrow, err := b.forecasts.FetchSingle(ctx, city, cities.High)
	if err != nil {
		return Observation{}, fmt.Errorf("build %s: %w", city.Code, err)
	}
	highEnsToday, highEnsTomorrow, err := b.forecasts.FetchEnsemble(ctx, city, cities.High)
	if err != nil {
		return Observation{}, fmt.Errorf("build %s: %w", city.Code, err)
	}

	lowSingleToday, lowSingleTomorrow, err := b.forecasts.FetchSingle(ctx, city, cities.Low)
	if err != nil {
		return Observation{}, fmt.Errorf("build %s: %w", city.Code, err)
	}
	lowEnsToday, lowEnsTomorrow, err := b.forecasts.FetchEnsemble(ctx, city, cities.Low)
	if err != nil {
		return Observation{}, fmt.Errorf("build %s: %w", city.Code, err)
	}

	highPrices, err := b.fetchPrices(ctx, city, cities.High, isToday)
	if err != nil {
		return Observation{}, fmt.Errorf("build %s: %w", city.Code, err)
	}
	lowPrices, err := b.fetchPrices(ctx, city, cities.Low, isToday)
	if err != nil {
		return Observation{}, fmt.Errorf("build %s: %w", city.Code, err)
	}

	obs := Observation{
		ID:        uuid.New(),
		City:      city.Code,
		Timestamp: b.now().In(b.loc),
		Today:     isToday,

		HighSingle:   highSingleTomorrow,
		HighEnsemble: highEnsTomorrow,
		HighPrices:   highPrices,

		LowSingle:   lowSingleTomorrow,
		LowEnsemble: lowEnsTomorrow,
		LowPrices:   lowPrices,
	}
	if isToday {
		obs.HighSingle = highSingleToday
		obs.HighEnsemble = highEnsToday
		obs.LowSingle = lowSingleToday
		obs.LowEnsemble = lowEnsToday
	}

	return obs, nil
}

// fetchPrices derives the price of every eligible contract in the
// city/direction series. No eligible contracts yields an empty map.
func (b *Builder) fetchPrices(ctx context.Context, city cities.City, direction cities.Direction, isToday bool) (map[string]int, error) {
	tickers, err := b.prices.ListEligibleContracts(ctx, city, direction, isToday)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]int, len(tickers))
	for _, ticker := range tickers {
		price, err := b.prices.FetchPrice(ctx, ticker)
		if err != nil {
			return nil, err
		}
		prices[ticker] = price
	}

	return prices, nil
}
