// Package search implements the term-search orchestrator: it drives
// tokenization of each source item, runs the matcher and scorer
// strategies, and produces filtered, ranked, limited results.
package search

import (
	"iter"

	internalErrors "github.com/gcbaptista/go-term-search/internal/errors"
	"github.com/gcbaptista/go-term-search/internal/tokenizer"
	"github.com/gcbaptista/go-term-search/matcher"
	"github.com/gcbaptista/go-term-search/model"
	"github.com/gcbaptista/go-term-search/scoring"
)

// Tokenizer reduces an arbitrary item into token-like values. Each
// produced value is coerced into a model.Token (Tokens pass through,
// everything else via its textual representation). It must be
// deterministic for reproducible ranking; an empty result means the
// item never matches.
type Tokenizer func(item any) []any

// Config holds the options recognized at search construction.
//
// Matchers and Scorers fully replace the built-in sets when non-nil;
// ExtraMatchers and ExtraScorers merge with whichever base set is in
// effect. An explicitly empty scorer list is a construction error.
type Config struct {
	// Query is the raw query string. Empty or blank means "no search":
	// execution yields no results and does no work.
	Query string

	// Source is the sequence of items to search. The engine performs
	// exactly one pass and never re-reads.
	Source iter.Seq[any]

	// Tokenizer reduces each item to its searchable tokens. Required
	// whenever a source is configured.
	Tokenizer Tokenizer

	// MatchAll restricts final results to items that matched every
	// query term.
	MatchAll bool

	// Limit optionally truncates the ranked output. Nil returns all
	// qualifying results.
	Limit *int

	Matchers      []matcher.Matcher
	ExtraMatchers []matcher.Matcher
	Scorers       []scoring.Scorer
	ExtraScorers  []scoring.Scorer

	// DisableStartsWith removes startsWith matchers from the resolved
	// set, leaving only equals and contains active.
	DisableStartsWith bool
}

// Search is a configured, ready-to-execute term search. Matchers are
// priority-sorted and the query split into its term set once, at
// construction.
type Search struct {
	cfg      Config
	terms    []string
	matchers []matcher.Matcher
	scorers  []scoring.Scorer
}

// New validates the configuration and builds a Search.
func New(cfg Config) (*Search, error) {
	if cfg.Source != nil && cfg.Tokenizer == nil {
		return nil, internalErrors.ErrNoTokenizer
	}

	baseMatchers := cfg.Matchers
	if baseMatchers == nil {
		baseMatchers = matcher.Defaults()
	}
	matchers := make([]matcher.Matcher, 0, len(baseMatchers)+len(cfg.ExtraMatchers))
	matchers = append(matchers, baseMatchers...)
	matchers = append(matchers, cfg.ExtraMatchers...)
	if cfg.DisableStartsWith {
		kept := matchers[:0:0]
		for _, m := range matchers {
			if m.Key() != model.MatchStartsWith {
				kept = append(kept, m)
			}
		}
		matchers = kept
	}

	baseScorers := cfg.Scorers
	if baseScorers == nil {
		baseScorers = scoring.Defaults()
	}
	scorers := make([]scoring.Scorer, 0, len(baseScorers)+len(cfg.ExtraScorers))
	scorers = append(scorers, baseScorers...)
	scorers = append(scorers, cfg.ExtraScorers...)
	if len(scorers) == 0 {
		return nil, internalErrors.ErrNoScorers
	}

	return &Search{
		cfg:      cfg,
		terms:    tokenizer.Terms(cfg.Query),
		matchers: matcher.SortByPriority(matchers),
		scorers:  scorers,
	}, nil
}

// Terms returns the de-duplicated term set the query was split into.
func (s *Search) Terms() []string {
	out := make([]string, len(s.terms))
	copy(out, s.terms)
	return out
}
