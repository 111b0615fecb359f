package matcher

import (
	"github.com/gcbaptista/go-term-search/model"
)

// EqualsMatcher matches tokens whose normalized value equals the term.
type EqualsMatcher struct{}

func (EqualsMatcher) Key() model.MatchKind { return model.MatchEquals }
func (EqualsMatcher) Priority() int        { return PriorityEquals }

func (EqualsMatcher) Apply(term string, token model.Token) []model.TermMatch {
	if !token.Equals(term) {
		return nil
	}
	return []model.TermMatch{{Kind: model.MatchEquals, Term: term, Token: token}}
}

// StartsWithMatcher matches tokens whose value starts with the term.
type StartsWithMatcher struct{}

func (StartsWithMatcher) Key() model.MatchKind { return model.MatchStartsWith }
func (StartsWithMatcher) Priority() int        { return PriorityStartsWith }

func (StartsWithMatcher) Apply(term string, token model.Token) []model.TermMatch {
	if !token.StartsWith(term) {
		return nil
	}
	return []model.TermMatch{{Kind: model.MatchStartsWith, Term: term, Token: token}}
}

// ContainsMatcher matches tokens whose value contains the term.
// Single-character terms are ignored: they match too broadly to carry
// any ranking signal.
type ContainsMatcher struct{}

func (ContainsMatcher) Key() model.MatchKind { return model.MatchContains }
func (ContainsMatcher) Priority() int        { return PriorityContains }

func (ContainsMatcher) Apply(term string, token model.Token) []model.TermMatch {
	if len(term) <= 1 || !token.Contains(term) {
		return nil
	}
	return []model.TermMatch{{Kind: model.MatchContains, Term: term, Token: token}}
}
