package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/jshelley/wxmarket-data/internal/cities"
	"github.com/jshelley/wxmarket-data/internal/collector"
	"github.com/jshelley/wxmarket-data/internal/config"
	"github.com/jshelley/wxmarket-data/internal/forecast"
	"github.com/jshelley/wxmarket-data/internal/journal"
	"github.com/jshelley/wxmarket-data/internal/market"
	"github.com/jshelley/wxmarket-data/internal/record"
	"github.com/jshelley/wxmarket-data/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (built-in defaults if empty)")
	city := flag.String("city", "", "collect one city now instead of running the schedule")
	tomorrow := flag.Bool("tomorrow", false, "target tomorrow's settlement instead of today's")
	dryRun := flag.Bool("dry-run", false, "build and print the record without writing the journal")
	daemon := flag.Bool("daemon", false, "stay resident and run the schedule at the top of every hour")
	flag.Parse()

	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting collector",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadAndValidate(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Fail fast on an incomplete city table.
	if err := cities.Validate(); err != nil {
		logger.Error("invalid city table", "error", err)
		os.Exit(1)
	}

	loc, err := cfg.Clock.Location()
	if err != nil {
		logger.Error("failed to resolve reference timezone", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"market_url", cfg.API.MarketURL,
		"journal", cfg.Journal.Path,
		"timezone", cfg.Clock.Timezone,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	marketClient := market.NewClient(cfg.API.MarketURL, loc,
		market.WithLogger(logger),
		market.WithTimeout(cfg.API.Timeout),
	)
	forecastClient := forecast.NewClient(cfg.API.ForecastURL, cfg.API.EnsembleURL,
		forecast.WithLogger(logger),
		forecast.WithTimeout(cfg.API.Timeout),
	)

	builder := record.NewBuilder(forecastClient, marketClient, loc)
	runner := collector.NewRunner(builder, journal.New(cfg.Journal.Path), logger)

	switch {
	case *city != "":
		c, ok := cities.ByCode(*city)
		if !ok {
			logger.Error("unknown city", "city", *city, "known", cities.Codes())
			os.Exit(1)
		}
		if _, err := runner.RunTask(ctx, c, !*tomorrow, *dryRun); err != nil {
			logger.Error("collection failed", "city", *city, "error", err)
			os.Exit(1)
		}

	case *daemon:
		cr := cron.New(cron.WithLocation(loc))
		_, err := cr.AddFunc("0 * * * *", func() {
			hour := time.Now().In(loc).Hour()
			if err := runner.RunHour(ctx, hour); err != nil {
				logger.Error("hourly run had failures", "hour", hour, "error", err)
			}
		})
		if err != nil {
			logger.Error("failed to schedule hourly job", "error", err)
			os.Exit(1)
		}

		cr.Start()
		logger.Info("collector daemon running", "timezone", cfg.Clock.Timezone)

		<-ctx.Done()
		logger.Info("shutting down...")
		<-cr.Stop().Done()

	default:
		hour := time.Now().In(loc).Hour()
		if err := runner.RunHour(ctx, hour); err != nil {
			os.Exit(1)
		}
	}

	logger.Info("collector stopped")
}
