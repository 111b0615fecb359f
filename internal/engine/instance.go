package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-term-search/config"
	"github.com/gcbaptista/go-term-search/internal/tokenizer"
	"github.com/gcbaptista/go-term-search/model"
	"github.com/gcbaptista/go-term-search/scoring"
	"github.com/gcbaptista/go-term-search/search"
	"github.com/gcbaptista/go-term-search/services"
	"github.com/gcbaptista/go-term-search/store"
)

// DatasetInstance binds one dataset's settings to its document store.
// It implements the services.DatasetAccessor interface.
type DatasetInstance struct {
	settings config.DatasetSettings
	store    *store.DatasetStore
}

// Settings returns a copy of the dataset settings.
func (inst *DatasetInstance) Settings() config.DatasetSettings {
	return inst.settings
}

// Count returns the number of stored documents.
func (inst *DatasetInstance) Count() int {
	return inst.store.Count()
}

// AddDocuments stores documents in the dataset.
func (inst *DatasetInstance) AddDocuments(docs ...model.Document) error {
	inst.store.AddDocuments(docs...)
	return nil
}

// Search runs one term search over a snapshot of the dataset.
// Query-level options override the dataset settings for this execution.
func (inst *DatasetInstance) Search(query services.SearchQuery) (services.SearchResult, error) {
	startTime := time.Now()

	matchAll := inst.settings.MatchAll
	if query.MatchAll != nil {
		matchAll = *query.MatchAll
	}
	limit := inst.settings.DefaultLimit
	if query.Limit != nil {
		limit = query.Limit
	}
	disableStartsWith := inst.settings.DisableStartsWith
	if query.DisableStartsWith != nil {
		disableStartsWith = *query.DisableStartsWith
	}

	scorers := scoring.Defaults()
	if len(inst.settings.FieldBoosts) > 0 {
		boosts := make(map[string]model.Boost, len(inst.settings.FieldBoosts))
		for field, amount := range inst.settings.FieldBoosts {
			boosts[field] = model.AmountBoost(amount, "field:"+field)
		}
		scorers = append(scorers, scoring.NewBoostTokenScorer(boosts))
	}

	s, err := search.New(search.Config{
		Query:             query.QueryString,
		Source:            search.SliceSource(inst.store.Snapshot()),
		Tokenizer:         fieldTokenizer(inst.settings.SearchableFields),
		MatchAll:          matchAll,
		Limit:             limit,
		Scorers:           scorers,
		DisableStartsWith: disableStartsWith,
	})
	if err != nil {
		return services.SearchResult{}, fmt.Errorf("building search for dataset '%s': %w", inst.settings.Name, err)
	}

	results, err := s.Execute()
	if err != nil {
		return services.SearchResult{}, fmt.Errorf("executing search for dataset '%s': %w", inst.settings.Name, err)
	}

	hits := make([]services.HitResult, len(results))
	for i, result := range results {
		doc, _ := result.Item.(model.Document)
		hits[i] = services.HitResult{
			Document:     doc,
			Score:        result.Score.Value(),
			MatchedTerms: result.MatchedTerms,
			Matches:      result.Matches,
			MatchAll:     result.MatchAll,
		}
	}

	return services.SearchResult{
		Hits:    hits,
		Total:   len(hits),
		Took:    time.Since(startTime).Milliseconds(),
		QueryId: uuid.New().String(),
	}, nil
}

// fieldTokenizer reduces a document to named tokens: each searchable
// field's text is split into words, and every word becomes a token
// named after its field.
func fieldTokenizer(fields []string) search.Tokenizer {
	return func(item any) []any {
		doc, ok := item.(model.Document)
		if !ok {
			return nil
		}
		var out []any
		for _, field := range fields {
			value, exists := doc[field]
			if !exists {
				continue
			}
			for _, word := range fieldWords(value) {
				out = append(out, model.NewNamedToken(word, field))
			}
		}
		return out
	}
}

// fieldWords extracts the words of one field value. String slices are
// flattened; other values go through their textual representation.
func fieldWords(value any) []string {
	switch v := value.(type) {
	case string:
		return tokenizer.Tokenize(v)
	case []string:
		var words []string
		for _, s := range v {
			words = append(words, tokenizer.Tokenize(s)...)
		}
		return words
	case []any:
		var words []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				words = append(words, tokenizer.Tokenize(s)...)
			}
		}
		return words
	case nil:
		return nil
	default:
		return tokenizer.Tokenize(fmt.Sprintf("%v", v))
	}
}
