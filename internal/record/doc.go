// Package record defines the observation record written to the log
// and the builder that correlates forecast and market data into one.
package record
