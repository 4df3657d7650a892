// Package name turns creature display names into the tokens typed input is
// matched against.
//
// Two token variants exist per name: the hyphen-preserving token and the
// hyphen-stripped token, so both "ho-oh" and "hooh" catch Ho-Oh.
package name

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases raw, folds diacritics, removes apostrophes,
// back-ticks, periods and whitespace, and maps en/em dashes to '-'
// Total for any input; empty input yields an empty token
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	lowered := cases.Lower(language.Und).String(raw)
	folded, _, err := transform.String(foldChain(), lowered)
	if err != nil {
		folded = lowered
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case isElided(r):
			continue
		case r == '–' || r == '—':
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}

	// Dropping a separator can leave composable neighbours, e.g. Hangul jamo
	return norm.NFC.String(b.String())
}

// StripHyphen normalizes s and removes every hyphen from the result
func StripHyphen(s string) string {
	return strings.ReplaceAll(Normalize(s), "-", "")
}

// Rune normalizes a single display character
// Punctuation and whitespace that Normalize deletes yield ""
func Rune(r rune) string {
	return Normalize(string(r))
}

// isElided reports characters players never have to type
func isElided(r rune) bool {
	switch r {
	case '\'', '’', '`', '.':
		return true
	}
	return unicode.IsSpace(r)
}

// foldChain is rebuilt per call: transformers carry state and are not safe
// for concurrent use
func foldChain() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
