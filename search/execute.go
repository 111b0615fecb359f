package search

import (
	"fmt"
	"iter"
	"sort"

	"github.com/gcbaptista/go-term-search/matcher"
	"github.com/gcbaptista/go-term-search/model"
)

// Results returns the raw, unsorted, unfiltered per-item result
// sequence, produced lazily as items are pulled from the source.
// Each yielded result is fully scored and frozen. Streaming consumers
// may stop early; the source is then no longer consumed.
//
// A non-nil error accompanies a result whose scoring failed; the
// result itself is nil in that case and iteration stops.
func (s *Search) Results() iter.Seq2[*model.TermSearchResult, error] {
	return func(yield func(*model.TermSearchResult, error) bool) {
		if len(s.terms) == 0 || s.cfg.Source == nil {
			return
		}
		for item := range s.cfg.Source {
			result, err := s.processItem(item)
			if err != nil {
				yield(nil, err)
				return
			}
			if result == nil {
				continue
			}
			if !yield(result, nil) {
				return
			}
		}
	}
}

// processItem tokenizes one item, runs the term×token cross product
// through the matchers, and scores the aggregated result. Items with
// no matches return (nil, nil) and never become results.
func (s *Search) processItem(item any) (*model.TermSearchResult, error) {
	raw := s.cfg.Tokenizer(item)
	tokens := make([]model.Token, 0, len(raw))
	for _, v := range raw {
		tokens = append(tokens, model.TokenOf(v))
	}
	tokenized := model.NewTokenizedItem(item, tokens)

	var matches []model.TermMatch
	for _, term := range s.terms {
		for _, token := range tokenized.Tokens {
			matches = append(matches, matcher.Match(s.matchers, term, token)...)
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}

	result := model.NewTermSearchResult(item, matches, len(s.terms))
	for _, scorer := range s.scorers {
		if err := scorer.ScoreTerm(result, result.Score); err != nil {
			return nil, fmt.Errorf("scoring item: %w", err)
		}
	}
	result.Score.Value() // freeze
	return result, nil
}

// Execute materializes the full result set, applies the match-all
// filter when required, sorts by descending score, and truncates to
// the configured limit. Equal scores keep source order (stable sort).
func (s *Search) Execute() ([]*model.TermSearchResult, error) {
	results := make([]*model.TermSearchResult, 0)
	for result, err := range s.Results() {
		if err != nil {
			return nil, err
		}
		if s.cfg.MatchAll && !result.MatchAll {
			continue
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score.Value() > results[j].Score.Value()
	})

	if s.cfg.Limit != nil {
		limit := *s.cfg.Limit
		if limit < 0 {
			limit = 0
		}
		if limit < len(results) {
			results = results[:limit]
		}
	}
	return results, nil
}

// Items projects Execute down to the ranked original items, discarding
// scores and match metadata.
func (s *Search) Items() ([]any, error) {
	results, err := s.Execute()
	if err != nil {
		return nil, err
	}
	items := make([]any, len(results))
	for i, result := range results {
		items[i] = result.Item
	}
	return items, nil
}
