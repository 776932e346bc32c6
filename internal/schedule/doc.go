// Package schedule holds the static hourly collection table.
//
// All hours are in the reference zone (America/Los_Angeles). Each
// city's contracts roll to a new settlement day at its local midnight
// and stop being worth polling mid-afternoon; the table bakes those
// windows in so a city is never polled before its market has rolled
// over or after its last relevant hour.
package schedule
