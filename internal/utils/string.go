package utils

import (
	"unicode"
)

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsWordPunct reports runes that real word lists carry inside words.
func IsWordPunct(r rune) bool {
	return r == '-' || r == '\''
}

// IsWildcardAlias reports the runes the pattern shorthand reads as unknown.
func IsWildcardAlias(r, wildcard rune) bool {
	return r == wildcard || r == '_' || r == '?'
}

// IsValidPattern checks if a shorthand pattern only holds letters, word
// punctuation and wildcards. Empty patterns are rejected.
func IsValidPattern(s string, wildcard rune) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) || IsWordPunct(r) || IsWildcardAlias(r, wildcard) {
			continue
		}
		return false
	}
	return true
}

// IsValidExclusion checks if excluded-letter text holds letters and spaces only.
func IsValidExclusion(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) && !IsWordPunct(r) {
			return false
		}
	}
	return true
}
