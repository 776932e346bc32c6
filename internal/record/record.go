package record

import (
	"time"

	"github.com/google/uuid"
)

// Observation is one correlated data point: the forecasts and contract
// prices for a single city's target day, captured in one pass.
//
// Records are append-only. The ensemble fields keep every raw member
// value so aggregates can be computed later, not at collection time.
type Observation struct {
	ID        uuid.UUID `json:"id"`
	City      string    `json:"city"`
	Timestamp time.Time `json:"timestamp"` // Localized to the reference zone
	Today     bool      `json:"today"`     // Whether the target day was today or tomorrow

	HighSingle   float64        `json:"high_single"`
	HighEnsemble []float64      `json:"high_ensemble"`
	HighPrices   map[string]int `json:"high_prices"` // Contract ticker -> implied YES price (cents)

	LowSingle   float64        `json:"low_single"`
	LowEnsemble []float64      `json:"low_ensemble"`
	LowPrices   map[string]int `json:"low_prices"`
}
