package main

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticStripper decomposes to NFD, drops combining marks, and
// recomposes, so "É" and "E" compare equal.
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeWord upper-cases a word and strips diacritics. Both the
// guess and the secret go through this before any comparison, which is
// what makes matching accent-insensitive. Pure and total: if the
// transform ever fails the upper-cased input is returned unchanged.
func normalizeWord(word string) string {
	upper := strings.ToUpper(strings.TrimSpace(word))
	stripped, _, err := transform.String(diacriticStripper, upper)
	if err != nil {
		logWarn("Diacritic stripping failed for %q: %v", word, err)
		return upper
	}
	return stripped
}
