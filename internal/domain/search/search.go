// Package search implements the case and accent insensitive matching used by
// list filters and the assistant.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lower-cases s and strips combining marks, so "Pós-Obra" folds to
// "pos-obra".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return cases.Lower(language.BrazilianPortuguese).String(folded)
}

// Contains reports whether needle occurs in any of the fields after folding.
// An empty needle matches everything.
func Contains(needle string, fields ...string) bool {
	n := Fold(strings.TrimSpace(needle))
	if n == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Fold(f), n) {
			return true
		}
	}
	return false
}
