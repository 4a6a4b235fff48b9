// SPDX-License-Identifier: MIT

package corpus

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isTokenRune reports whether r may appear inside a token.
func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}

// Tokenize lowercases sentence and returns its maximal runs of letters,
// digits and apostrophes, keeping only tokens longer than one rune.
func Tokenize(sentence string) []string {
	fields := strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !isTokenRune(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) > 1 {
			out = append(out, f)
		}
	}

	return out
}
