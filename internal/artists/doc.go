// Package artists holds the curated artist genre table and the lookup that
// maps a catalog artist column to style tags.
//
// Keys are matched, not compared: a key matches when its folded form occurs
// anywhere inside the folded artist name, which tolerates featured-artist
// annotations and "Band"/"& Orchestra" suffixes. When several keys match, the
// longest key wins and ties fall back to definition order, so "Ivo Fomins"
// beats "Fomins" regardless of how the table is arranged.
//
// The built-in table is embedded TOML. Additional tables can be loaded from
// TOML or YAML files and merged over it, replacing entries with the same key.
package artists
