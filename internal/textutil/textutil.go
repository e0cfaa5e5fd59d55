// Package textutil provides shared text matching helpers for the
// dimension scoring strategies.
package textutil

import (
	"regexp"
	"strings"
)

// Tokenize splits a string into word tokens.
// Word characters are letters, digits, and underscores.
func Tokenize(s string) []string {
	words := make([]string, 0)
	var current strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			current.WriteRune(r)
		} else if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}
	return words
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Contains reports whether term occurs as a substring of the
// case-folded text. The text is expected to be lower-cased already;
// the term is folded here.
func Contains(textLower, term string) bool {
	return strings.Contains(textLower, strings.ToLower(term))
}

// ContainsAny returns the subset of terms that occur as substrings of
// the lower-cased text, in the order given.
func ContainsAny(textLower string, terms []string) []string {
	var matched []string
	for _, term := range terms {
		if Contains(textLower, term) {
			matched = append(matched, term)
		}
	}
	return matched
}

// CountTerms returns how many of the given terms occur as substrings
// of the lower-cased text.
func CountTerms(textLower string, terms []string) int {
	count := 0
	for _, term := range terms {
		if Contains(textLower, term) {
			count++
		}
	}
	return count
}

// WordPattern compiles a word-boundary pattern for a literal term, for
// counting whole-word occurrences. Terms may contain spaces.
func WordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(term)) + `\b`)
}

// Occurrences counts whole-word occurrences of a precompiled term
// pattern in the lower-cased text.
func Occurrences(pattern *regexp.Regexp, textLower string) int {
	return len(pattern.FindAllStringIndex(textLower, -1))
}
