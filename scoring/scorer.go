// Package scoring defines the strategies that turn match evidence into
// boosts on a result's score. Scorers are pure: they read an aggregated
// result and append boosts, and must not read the not-yet-computed
// scalar value.
package scoring

import (
	"github.com/gcbaptista/go-term-search/model"
)

// Scorer inspects an aggregated search result and appends zero or more
// boosts to its score.
type Scorer interface {
	ScoreTerm(result *model.TermSearchResult, score *model.Score) error
}

// Defaults returns the built-in scorer set.
func Defaults() []Scorer {
	return []Scorer{
		MatchAllTermsScorer{},
		MatchedTermsScorer{},
		NewMatchedTokensScorer(),
	}
}
