// Package strutil provides small, pure string helpers: whitespace trimming
// and delimiter splitting with token cleanup.
package strutil

import (
	"strings"
	"unicode"
)

// TrimLeft returns s without leading Unicode whitespace.
func TrimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// TrimRight returns s without trailing Unicode whitespace.
func TrimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// Trim returns s without leading and trailing Unicode whitespace.
func Trim(s string) string {
	return strings.TrimFunc(s, unicode.IsSpace)
}

// Split cuts s on every occurrence of any delimiter rune, trims each piece,
// and returns the pieces that remain non-empty. Runs of delimiters and
// whitespace-only pieces therefore produce no tokens:
//
//	Split("a, ,b,,c", ',') // ["a" "b" "c"]
//
// With no delimiters, a non-blank s yields a single trimmed token.
func Split(s string, delims ...rune) []string {
	isDelim := func(r rune) bool {
		for _, d := range delims {
			if r == d {
				return true
			}
		}
		return false
	}

	var tokens []string
	for _, piece := range strings.FieldsFunc(s, isDelim) {
		if trimmed := Trim(piece); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}
