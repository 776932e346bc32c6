// Package journal implements the append-only observation log.
//
// The log is a single JSON array file. Each append reads the whole
// file, appends one record, and rewrites it. That is O(n) per write
// and not safe for concurrent writers, which is fine here: at most a
// few dozen records a day, written by one process at a time.
package journal
