// Package main hosts the lomtag CLI entrypoint and command graph.
//
// The Cobra-based command tree runs the batch classifier over a catalog file,
// explains the decision for a single song, inspects the artist table and the
// tag taxonomy, and scaffolds configuration. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on output.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
