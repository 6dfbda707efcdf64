// Package report accumulates per-run statistics and renders them.
//
// A Collector receives one Entry per classified row, in row order, and keeps
// running counters: songs per tag, tags-per-song distribution, unmatched
// artists, rows left with a single tag and rows whose tags changed. Summary
// freezes the counters into a value that renders either as text tables or as
// JSON.
package report
