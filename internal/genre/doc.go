// Package genre defines the closed category taxonomy applied to song records.
//
// The taxonomy has seventeen tags. Their order is significant: it is the order
// of the marker columns in the catalog spreadsheet, and every listing in the
// CLI and report follows it. Three tags (RETRO, ATMODA, JAUNUMI) describe the
// release period and are derived from the year alone; the rest describe style.
//
// Set is a small bitset over the taxonomy. It is a value type, so callers can
// pass it around and combine sets without worrying about aliasing.
//
// Preserved lists the tags that are curated by hand in the spreadsheet and must
// survive reclassification. Nothing in the rules produces them.
package genre
