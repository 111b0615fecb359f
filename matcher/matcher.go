// Package matcher defines the strategies that decide whether a token
// satisfies a query term. Matchers are evaluated in ascending priority
// order; for a given (term, token) pair the first matcher returning a
// non-empty result wins and lower-priority matchers are never consulted.
package matcher

import (
	"sort"

	"github.com/gcbaptista/go-term-search/model"
)

// Matcher is a stateless strategy that may produce zero, one, or
// multiple term matches for a (term, token) pair. An empty result
// means "no match from this strategy".
type Matcher interface {
	Key() model.MatchKind
	Priority() int
	Apply(term string, token model.Token) []model.TermMatch
}

// Priorities of the built-in matchers. Gaps leave room for custom
// matchers to slot between them.
const (
	PriorityEquals     = 0
	PriorityStartsWith = 10
	PriorityContains   = 20
)

// Defaults returns the built-in matcher set, already sorted by priority.
func Defaults() []Matcher {
	return SortByPriority([]Matcher{
		EqualsMatcher{},
		StartsWithMatcher{},
		ContainsMatcher{},
	})
}

// SortByPriority returns the matchers sorted ascending by priority.
// Matchers with equal priority keep their given order. The input slice
// is not modified.
func SortByPriority(matchers []Matcher) []Matcher {
	sorted := make([]Matcher, len(matchers))
	copy(sorted, matchers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})
	return sorted
}

// Match runs the matchers (assumed priority-sorted) against one
// (term, token) pair and returns the result of the first matcher that
// produces any matches. Matchers are mutually exclusive per pair: a
// token that both equals-matches and contains-matches yields only the
// equals match.
func Match(matchers []Matcher, term string, token model.Token) []model.TermMatch {
	for _, m := range matchers {
		if matches := m.Apply(term, token); len(matches) > 0 {
			return matches
		}
	}
	return nil
}
