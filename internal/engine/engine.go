// Package engine wires dataset settings, storage, and search
// construction together behind the services interfaces.
package engine

import (
	"sort"
	"sync"

	"github.com/gcbaptista/go-term-search/config"
	internalErrors "github.com/gcbaptista/go-term-search/internal/errors"
	"github.com/gcbaptista/go-term-search/services"
	"github.com/gcbaptista/go-term-search/store"
)

// Engine manages multiple datasets. It implements the
// services.DatasetManager interface. All state is in memory.
type Engine struct {
	mu       sync.RWMutex
	datasets map[string]*DatasetInstance
}

// NewEngine creates a new dataset manager.
func NewEngine() *Engine {
	return &Engine{
		datasets: make(map[string]*DatasetInstance),
	}
}

// CreateDataset validates the settings and registers an empty dataset.
func (e *Engine) CreateDataset(settings config.DatasetSettings) error {
	if settings.Name == "" {
		return internalErrors.NewValidationError("name", "dataset name is required")
	}
	settings.ApplyDefaults()
	if conflicts := settings.ValidateFieldNames(); len(conflicts) > 0 {
		return internalErrors.NewValidationError("settings", conflicts[0])
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.datasets[settings.Name]; exists {
		return internalErrors.NewDatasetAlreadyExistsError(settings.Name)
	}
	e.datasets[settings.Name] = &DatasetInstance{
		settings: settings,
		store:    store.NewDatasetStore(),
	}
	return nil
}

// GetDataset returns an accessor for the named dataset.
func (e *Engine) GetDataset(name string) (services.DatasetAccessor, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.datasets[name]
	if !exists {
		return nil, internalErrors.NewDatasetNotFoundError(name)
	}
	return instance, nil
}

// DeleteDataset removes the named dataset and its documents.
func (e *Engine) DeleteDataset(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.datasets[name]; !exists {
		return internalErrors.NewDatasetNotFoundError(name)
	}
	delete(e.datasets, name)
	return nil
}

// ListDatasets returns the settings of all datasets, sorted by name.
func (e *Engine) ListDatasets() []config.DatasetSettings {
	e.mu.RLock()
	defer e.mu.RUnlock()

	list := make([]config.DatasetSettings, 0, len(e.datasets))
	for _, instance := range e.datasets {
		list = append(list, instance.settings)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
