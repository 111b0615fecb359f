package scoring

import (
	"github.com/gcbaptista/go-term-search/model"
)

// MatchAllTermsScorer rewards results that matched every query term
// with an extra 0.5 per matched term. Partial matches get nothing.
type MatchAllTermsScorer struct{}

func (MatchAllTermsScorer) ScoreTerm(result *model.TermSearchResult, score *model.Score) error {
	if !result.MatchAll {
		return nil
	}
	return score.Add(model.AmountBoost(0.5*float64(len(result.MatchedTerms)), "matchAllTerms"))
}

// MatchedTermsScorer rewards breadth of term coverage linearly: one
// point per distinct matched term.
type MatchedTermsScorer struct{}

func (MatchedTermsScorer) ScoreTerm(result *model.TermSearchResult, score *model.Score) error {
	return score.Add(model.AmountBoost(float64(len(result.MatchedTerms)), "matchedTerms"))
}

// Match-quality factors applied per term match by MatchedTokensScorer.
const (
	equalsFactor     = 1.3
	startsWithFactor = 1.0
	containsFactor   = 0.85
)

// MatchedTokensScorer adds one boost per term match, scaling its base
// boost by the quality of the match kind. Unrecognized kinds contribute
// nothing.
type MatchedTokensScorer struct {
	Base model.Boost
}

// NewMatchedTokensScorer creates a MatchedTokensScorer with the default
// base amount of 1.0.
func NewMatchedTokensScorer() MatchedTokensScorer {
	return MatchedTokensScorer{Base: model.AmountBoost(1.0, "matchedTokens")}
}

func (s MatchedTokensScorer) ScoreTerm(result *model.TermSearchResult, score *model.Score) error {
	for _, match := range result.Matches {
		var factor float64
		switch match.Kind {
		case model.MatchEquals:
			factor = equalsFactor
		case model.MatchStartsWith:
			factor = startsWithFactor
		case model.MatchContains:
			factor = containsFactor
		default:
			continue
		}
		if err := score.Add(s.Base.Times(factor)); err != nil {
			return err
		}
	}
	return nil
}

// BoostTokenScorer weights specific semantic token names independently
// of match quality: each matched token whose name is a key in the
// mapping contributes the mapped boost once. Opt-in, not part of the
// default scorer set.
type BoostTokenScorer struct {
	Boosts map[string]model.Boost
}

// NewBoostTokenScorer creates a BoostTokenScorer from a token-name to
// boost mapping.
func NewBoostTokenScorer(boosts map[string]model.Boost) BoostTokenScorer {
	return BoostTokenScorer{Boosts: boosts}
}

func (s BoostTokenScorer) ScoreTerm(result *model.TermSearchResult, score *model.Score) error {
	seen := make(map[model.Token]struct{}, len(result.Matches))
	for _, match := range result.Matches {
		if _, ok := seen[match.Token]; ok {
			continue
		}
		seen[match.Token] = struct{}{}

		boost, ok := s.Boosts[match.Token.Name]
		if !ok {
			continue
		}
		if err := score.Add(boost); err != nil {
			return err
		}
	}
	return nil
}
