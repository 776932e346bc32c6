// Package cities holds the static table of tracked cities.
//
// Each city carries the coordinates used for forecast queries, the
// ensemble model that performs best for its climate, and the two Kalshi
// series tickers (daily high and daily low temperature contracts).
//
// The table is fixed at compile time. Validate should be called at
// process start so an incomplete entry fails fast instead of surfacing
// mid-collection.
package cities
