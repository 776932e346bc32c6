package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/jshelley/wxmarket-data/internal/cities"
	"github.com/jshelley/wxmarket-data/internal/config"
	"github.com/jshelley/wxmarket-data/internal/forecast"
	"github.com/jshelley/wxmarket-data/internal/market"
)

// Manual smoke check of the upstream APIs for one city. Run it before
// trusting a new deployment or after Kalshi schema changes.
func main() {
	cityCode := flag.String("city", "la", "city code to probe")
	flag.Parse()

	city, ok := cities.ByCode(*cityCode)
	if !ok {
		log.Fatalf("unknown city %q (known: %v)", *cityCode, cities.Codes())
	}

	cfg := config.Default()
	loc, err := cfg.Clock.Location()
	if err != nil {
		log.Fatalf("load timezone: %v", err)
	}

	forecastClient := forecast.NewClient(cfg.API.ForecastURL, cfg.API.EnsembleURL,
		forecast.WithTimeout(cfg.API.Timeout),
	)
	marketClient := market.NewClient(cfg.API.MarketURL, loc,
		market.WithTimeout(cfg.API.Timeout),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Printf("=== Single forecast (%s) ===\n", city.Code)
	highToday, highTomorrow, err := forecastClient.FetchSingle(ctx, city, cities.High)
	if err != nil {
		log.Fatalf("FetchSingle failed: %v", err)
	}
	fmt.Printf("High today: %.1fF, tomorrow: %.1fF\n", highToday, highTomorrow)

	fmt.Printf("\n=== Ensemble forecast (%s, %s) ===\n", city.Code, city.EnsembleModel)
	ensToday, ensTomorrow, err := forecastClient.FetchEnsemble(ctx, city, cities.High)
	if err != nil {
		log.Fatalf("FetchEnsemble failed: %v", err)
	}
	fmt.Printf("Members: %d\n", len(ensToday))
	for i := 0; i < len(ensToday) && i < 5; i++ {
		fmt.Printf("  member %d: today %.1fF, tomorrow %.1fF\n", i, ensToday[i], ensTomorrow[i])
	}

	fmt.Printf("\n=== Eligible contracts (%s high, today) ===\n", city.Code)
	tickers, err := marketClient.ListEligibleContracts(ctx, city, cities.High, true)
	if err != nil {
		log.Fatalf("ListEligibleContracts failed: %v", err)
	}
	fmt.Printf("Found %d contracts\n", len(tickers))

	for i, ticker := range tickers {
		if i >= 3 {
			break
		}
		price, err := marketClient.FetchPrice(ctx, ticker)
		if err != nil {
			log.Fatalf("FetchPrice(%s) failed: %v", ticker, err)
		}
		fmt.Printf("  %s -> %d\n", ticker, price)
	}
}
