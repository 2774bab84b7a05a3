package refdata

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics decomposes characters and strips combining marks, so
// "Zürich" → "Zurich" and "Genève" → "Geneve". This covers the Swiss
// alphabets (ä ö ü à è é ê ô û ç and friends) in one pass.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName normalizes a street or locality name for comparison:
// lowercase, diacritics folded to ASCII, whitespace collapsed. Idempotent.
//
//	NormalizeName("Bahnhofstrasse")   = "bahnhofstrasse"
//	NormalizeName("Zürich  Sihlpost") = "zurich sihlpost"
//	NormalizeName("Rue de Genève")    = "rue de geneve"
func NormalizeName(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	folded, _, err := transform.String(foldDiacritics, lowered)
	if err != nil {
		// Malformed UTF-8 only; fall back to the lowercased input.
		folded = lowered
	}
	return strings.Join(strings.Fields(folded), " ")
}

// NormalizePostalCode normalizes a Swiss postal code for consistent lookups:
// all whitespace stripped, left-padded with zeros to 4 characters. Idempotent.
//
//	NormalizePostalCode(" 8001 ") = "8001"
//	NormalizePostalCode("801")    = "0801"
//	NormalizePostalCode("1")      = "0001"
func NormalizePostalCode(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	for len(clean) < 4 {
		clean = "0" + clean
	}
	return clean
}
