// Package collector runs collection tasks: it drives the record
// builder for each scheduled (city, day) pair and appends the results
// to the journal.
package collector
