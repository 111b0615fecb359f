// Package config provides configuration structures for the term-search
// service. It defines dataset settings: which document fields are
// searchable, per-field boosts, and default search behavior.
package config

import (
	"strings"
)

// DatasetSettings contains all configuration options for a dataset.
type DatasetSettings struct {
	Name             string   `json:"name"`              // Unique name for the dataset
	SearchableFields []string `json:"searchable_fields"` // Document fields reduced to tokens (token name = field name)

	// FieldBoosts maps a searchable field name to a fixed additive
	// boost added once per matched token from that field. Lets callers
	// weight semantic fields (e.g. "firstName") independently of match
	// quality.
	FieldBoosts map[string]float64 `json:"field_boosts,omitempty"`

	// MatchAll restricts results to documents matching every query term.
	MatchAll bool `json:"match_all"`

	// DefaultLimit truncates ranked results when the query does not
	// carry its own limit. Nil returns all qualifying results.
	DefaultLimit *int `json:"default_limit,omitempty"`

	// DisableStartsWith drops the prefix matcher, leaving only exact
	// and contains matching active for this dataset.
	DisableStartsWith bool `json:"disable_starts_with"`
}

// ApplyDefaults fills zero values with sensible defaults.
func (settings *DatasetSettings) ApplyDefaults() {
	if settings.SearchableFields == nil {
		settings.SearchableFields = []string{}
	}
}

// ValidateFieldNames validates field names for basic requirements and
// returns a list of human-readable conflicts. An empty list means the
// settings are valid.
func (settings *DatasetSettings) ValidateFieldNames() []string {
	var conflicts []string

	conflicts = append(conflicts, checkDuplicates("searchable_fields", settings.SearchableFields)...)

	searchable := make(map[string]struct{}, len(settings.SearchableFields))
	for _, field := range settings.SearchableFields {
		if strings.TrimSpace(field) == "" {
			conflicts = append(conflicts, "Field name cannot be empty or whitespace-only")
			continue
		}
		searchable[field] = struct{}{}
	}

	for field := range settings.FieldBoosts {
		if _, ok := searchable[field]; !ok {
			conflicts = append(conflicts, "Field '"+field+"' in field_boosts must be listed in searchable_fields")
		}
	}

	return conflicts
}

// checkDuplicates returns a conflict message for each duplicated entry
// in the given field list.
func checkDuplicates(listName string, fields []string) []string {
	var conflicts []string
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if _, ok := seen[field]; ok {
			conflicts = append(conflicts, "Duplicate field '"+field+"' in "+listName)
			continue
		}
		seen[field] = struct{}{}
	}
	return conflicts
}
