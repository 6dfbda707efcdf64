// Package config loads, normalizes, and validates lomtag configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// LOMTAG_INPUT and LOMTAG_OUTPUT. The Config type centralizes every knob the
// classifier, report, and CLI need so input/output locations, delimiters, and
// keyword lists are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
