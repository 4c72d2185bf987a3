package main

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeAnswer folds case, trims whitespace, and strips diacritics so
// that "OMBRE", " ombre " and "ombré" all compare equal.
func normalizeAnswer(answer string) string {
	answer = strings.ToLower(strings.TrimSpace(answer))

	stripped, _, err := transform.String(diacriticStripper, answer)
	if err != nil {
		return answer
	}

	return stripped
}
