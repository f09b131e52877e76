package fuzzydist

import "strings"

// foldASCII lowercases only the ASCII letters A-Z. Unlike strings.ToLower
// it leaves every non-ASCII codepoint untouched, keeping folded distances
// predictable for non-English text.
func foldASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}
