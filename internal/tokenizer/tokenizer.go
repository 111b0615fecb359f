package tokenizer

import (
	"regexp"
	"strings"
)

// termDelimiterRegex matches the delimiter class for query splitting:
// whitespace, hyphens, and periods.
var termDelimiterRegex = regexp.MustCompile(`[\s.-]+`)

// nonAlphanumericRegex matches sequences of non-alphanumeric characters.
var nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Terms splits a raw query string into its set of search terms:
// lowercased, split on whitespace/hyphen/period, empty pieces dropped,
// duplicates collapsed. First-seen order is preserved so callers can
// iterate deterministically.
func Terms(query string) []string {
	split := termDelimiterRegex.Split(strings.ToLower(query), -1)

	terms := make([]string, 0, len(split))
	seen := make(map[string]struct{}, len(split))
	for _, s := range split {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		terms = append(terms, s)
	}
	return terms
}

// Tokenize converts field text into a slice of lowercase tokens, split
// by non-alphanumeric characters. Used by the dataset tokenizer to turn
// document field values into searchable tokens.
func Tokenize(text string) []string {
	split := nonAlphanumericRegex.Split(strings.ToLower(text), -1)

	tokens := make([]string, 0)
	for _, s := range split {
		if s != "" {
			tokens = append(tokens, s)
		}
	}
	return tokens
}
