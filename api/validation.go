// Package api provides the HTTP surface of the term-search service.
package api

import (
	"fmt"
	"strings"

	"github.com/gcbaptista/go-term-search/config"
	"github.com/gcbaptista/go-term-search/model"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateDatasetName validates a dataset name parameter
func ValidateDatasetName(datasetName string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if datasetName == "" {
		result.AddError("datasetName", "Dataset name is required")
		return result
	}

	if strings.TrimSpace(datasetName) != datasetName {
		result.AddError("datasetName", "Dataset name cannot have leading or trailing whitespace")
		return result
	}

	return result
}

// ValidateDatasetSettings validates dataset settings for creation
func ValidateDatasetSettings(settings *config.DatasetSettings) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if settings == nil {
		result.AddError("settings", "Dataset settings are required")
		return result
	}

	if settings.Name == "" {
		result.AddError("name", "Dataset name is required")
	}

	settings.ApplyDefaults()

	if conflicts := settings.ValidateFieldNames(); len(conflicts) > 0 {
		for _, conflict := range conflicts {
			result.AddError("field_validation", conflict)
		}
	}

	return result
}

// ValidateDocuments validates a slice of documents for addition
func ValidateDocuments(docs []model.Document) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(docs) == 0 {
		result.AddError("documents", "At least one document is required")
		return result
	}

	for i, doc := range docs {
		if len(doc) == 0 {
			result.AddError("documents", fmt.Sprintf("Document at position %d is empty", i))
		}
	}

	return result
}
