package services

import (
	"github.com/gcbaptista/go-term-search/config"
	"github.com/gcbaptista/go-term-search/model"
)

// HitResult represents a single document in the search results,
// including the document itself and details about which query terms
// matched in which fields.
type HitResult struct {
	Document     model.Document    `json:"document"`
	Score        float64           `json:"score"`
	MatchedTerms []string          `json:"matched_terms"`
	Matches      []model.TermMatch `json:"matches"`
	MatchAll     bool              `json:"match_all"`
}

// SearchResult is the response for one search execution.
type SearchResult struct {
	Hits    []HitResult `json:"hits"`
	Total   int         `json:"total"`
	Took    int64       `json:"took"`     // milliseconds
	QueryId string      `json:"query_id"` // unique UUID for this search query
}

// SearchQuery carries a search request against a dataset. Optional
// fields override the dataset settings for this query only.
type SearchQuery struct {
	QueryString       string `json:"query"`
	MatchAll          *bool  `json:"match_all,omitempty"`
	Limit             *int   `json:"limit,omitempty"`
	DisableStartsWith *bool  `json:"disable_starts_with,omitempty"`
}

// DatasetAccessor provides operations on a single dataset.
type DatasetAccessor interface {
	AddDocuments(docs ...model.Document) error
	Search(query SearchQuery) (SearchResult, error)
	Settings() config.DatasetSettings
	Count() int
}

// DatasetManager manages the lifecycle of datasets.
type DatasetManager interface {
	CreateDataset(settings config.DatasetSettings) error
	GetDataset(name string) (DatasetAccessor, error)
	DeleteDataset(name string) error
	ListDatasets() []config.DatasetSettings
}
