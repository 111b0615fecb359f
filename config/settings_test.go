package config

import (
	"testing"
)

func TestValidateFieldNames(t *testing.T) {
	tests := []struct {
		name           string
		settings       DatasetSettings
		expectedErrors int
	}{
		{
			name: "valid settings",
			settings: DatasetSettings{
				Name:             "people",
				SearchableFields: []string{"firstName", "lastName", "city"},
				FieldBoosts:      map[string]float64{"firstName": 2.0},
			},
			expectedErrors: 0,
		},
		{
			name: "duplicate searchable field",
			settings: DatasetSettings{
				Name:             "people",
				SearchableFields: []string{"firstName", "firstName"},
			},
			expectedErrors: 1,
		},
		{
			name: "blank searchable field",
			settings: DatasetSettings{
				Name:             "people",
				SearchableFields: []string{"firstName", "  "},
			},
			expectedErrors: 1,
		},
		{
			name: "boosted field must be searchable",
			settings: DatasetSettings{
				Name:             "people",
				SearchableFields: []string{"firstName"},
				FieldBoosts:      map[string]float64{"lastName": 2.0},
			},
			expectedErrors: 1,
		},
		{
			name: "empty searchable fields is allowed",
			settings: DatasetSettings{
				Name: "people",
			},
			expectedErrors: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts := tt.settings.ValidateFieldNames()
			if len(conflicts) != tt.expectedErrors {
				t.Errorf("ValidateFieldNames() = %v, want %d conflicts", conflicts, tt.expectedErrors)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	settings := DatasetSettings{Name: "people"}
	settings.ApplyDefaults()
	if settings.SearchableFields == nil {
		t.Error("SearchableFields is nil after ApplyDefaults, want empty slice")
	}
}
