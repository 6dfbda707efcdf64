// Package textutil provides the name normalization shared by artist lookup and
// title keyword matching.
//
// Names in the catalog mix Latvian diacritics, featured-artist annotations and
// inconsistent casing, and some exports store diacritics in decomposed form.
// Fold trims, composes to NFC and applies Unicode case folding so that
// "PRĀTA VĒTRA" and "Prāta Vētra" compare equal byte for byte.
package textutil
