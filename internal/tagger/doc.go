// Package tagger wires the catalog reader, the classifier, the report
// collector, and the catalog writer into one batch run.
//
// A Tagger is built once from configuration. Run reads the whole catalog,
// classifies every row (optionally in parallel), rewrites the marker columns,
// and writes the output file atomically. The returned report.Summary carries
// the statistics the CLI prints.
package tagger
