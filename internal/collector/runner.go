package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/jshelley/wxmarket-data/internal/cities"
	"github.com/jshelley/wxmarket-data/internal/record"
	"github.com/jshelley/wxmarket-data/internal/schedule"
)

// Log is the journal surface the runner needs.
type Log interface {
	Append(record.Observation) error
	Len() (int, error)
}

// Runner executes collection tasks.
type Runner struct {
	builder *record.Builder
	journal Log
	logger  *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(builder *record.Builder, journal Log, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		builder: builder,
		journal: journal,
		logger:  logger,
	}
}

// RunTask collects one (city, day) observation. With dryRun the record
// is built and printed but the journal is left untouched.
func (r *Runner) RunTask(ctx context.Context, city cities.City, isToday, dryRun bool) (record.Observation, error) {
	obs, err := r.builder.Build(ctx, city, isToday)
	if err != nil {
		return record.Observation{}, err
	}

	if dryRun {
		data, err := json.MarshalIndent(obs, "", "  ")
		if err != nil {
			return record.Observation{}, fmt.Errorf("encode observation: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
	} else {
		if err := r.journal.Append(obs); err != nil {
			return record.Observation{}, err
		}
	}

	total, err := r.journal.Len()
	if err != nil {
		total = -1
	}

	r.logger.Info("logged data point",
		"city", city.Code,
		"today", isToday,
		"dry_run", dryRun,
		"high_contracts", len(obs.HighPrices),
		"low_contracts", len(obs.LowPrices),
		"journal_len", total,
	)

	return obs, nil
}

// RunHour executes every task scheduled for the given reference-zone
// hour. A failed city is logged and skipped so the remaining cities
// still get collected; the first failure is returned once all tasks
// have been attempted. No scheduled tasks is a normal no-op.
func (r *Runner) RunHour(ctx context.Context, hour int) error {
	tasks := schedule.TasksForHour(hour)
	if len(tasks) == 0 {
		r.logger.Info("no data points scheduled for this hour", "hour", hour)
		return nil
	}

	var firstErr error
	for _, task := range tasks {
		city, ok := cities.ByCode(task.City)
		if !ok {
			// Schedule and city tables are both static, so this only
			// happens if they drift apart.
			err := fmt.Errorf("scheduled city %q not in city table", task.City)
			r.logger.Error("skipping task", "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if _, err := r.RunTask(ctx, city, task.Today, false); err != nil {
			r.logger.Error("task failed",
				"city", task.City,
				"today", task.Today,
				"error", err,
			)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
