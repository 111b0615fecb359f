package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrScoreFrozen is returned when a boost is appended to a score
	// whose scalar value has already been computed
	ErrScoreFrozen = errors.New("score already computed")

	// ErrNoScorers is returned when a search is constructed with an
	// empty scorer list
	ErrNoScorers = errors.New("scorer list is empty")

	// ErrNoTokenizer is returned when a search over an item source is
	// constructed without a tokenizer
	ErrNoTokenizer = errors.New("tokenizer is required")

	// ErrAmbiguousMatchCheck is returned when two incompatible match
	// representations are compared during diagnostics
	ErrAmbiguousMatchCheck = errors.New("ambiguous match comparison")

	// ErrDatasetNotFound is returned when a dataset is not found
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrDatasetAlreadyExists is returned when trying to create a dataset that already exists
	ErrDatasetAlreadyExists = errors.New("dataset already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// ScoreFrozenError represents an append to an already-computed score
// with context about the rejected boost
type ScoreFrozenError struct {
	BoostLabel string
}

func (e *ScoreFrozenError) Error() string {
	if e.BoostLabel != "" {
		return fmt.Sprintf("cannot add boost '%s': score already computed", e.BoostLabel)
	}
	return "cannot add boost: score already computed"
}

func (e *ScoreFrozenError) Is(target error) bool {
	return target == ErrScoreFrozen
}

// NewScoreFrozenError creates a new ScoreFrozenError
func NewScoreFrozenError(boostLabel string) *ScoreFrozenError {
	return &ScoreFrozenError{BoostLabel: boostLabel}
}

// AmbiguousMatchCheckError represents a comparison between two
// incompatible match-check representations
type AmbiguousMatchCheckError struct {
	Left  string
	Right string
}

func (e *AmbiguousMatchCheckError) Error() string {
	return fmt.Sprintf("cannot compare match checks '%s' and '%s'", e.Left, e.Right)
}

func (e *AmbiguousMatchCheckError) Is(target error) bool {
	return target == ErrAmbiguousMatchCheck
}

// NewAmbiguousMatchCheckError creates a new AmbiguousMatchCheckError
func NewAmbiguousMatchCheckError(left, right string) *AmbiguousMatchCheckError {
	return &AmbiguousMatchCheckError{Left: left, Right: right}
}

// DatasetNotFoundError represents a dataset not found error with context
type DatasetNotFoundError struct {
	DatasetName string
}

func (e *DatasetNotFoundError) Error() string {
	return fmt.Sprintf("dataset named '%s' not found", e.DatasetName)
}

func (e *DatasetNotFoundError) Is(target error) bool {
	return target == ErrDatasetNotFound
}

// NewDatasetNotFoundError creates a new DatasetNotFoundError
func NewDatasetNotFoundError(datasetName string) *DatasetNotFoundError {
	return &DatasetNotFoundError{DatasetName: datasetName}
}

// DatasetAlreadyExistsError represents a dataset already exists error with context
type DatasetAlreadyExistsError struct {
	DatasetName string
}

func (e *DatasetAlreadyExistsError) Error() string {
	return fmt.Sprintf("dataset named '%s' already exists", e.DatasetName)
}

func (e *DatasetAlreadyExistsError) Is(target error) bool {
	return target == ErrDatasetAlreadyExists
}

// NewDatasetAlreadyExistsError creates a new DatasetAlreadyExistsError
func NewDatasetAlreadyExistsError(datasetName string) *DatasetAlreadyExistsError {
	return &DatasetAlreadyExistsError{DatasetName: datasetName}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
