// Package store provides the in-memory item storage for datasets.
// Nothing is persisted: every search re-scans the stored items.
package store

import (
	"sync"

	"github.com/gcbaptista/go-term-search/model"
)

// DatasetStore holds the documents of one dataset. Documents keep
// insertion order; documents carrying a documentID replace any earlier
// document with the same ID.
type DatasetStore struct {
	Mu                sync.RWMutex
	Docs              []model.Document
	ExternalIDToIndex map[string]int // documentID to position in Docs
}

// NewDatasetStore creates an empty store.
func NewDatasetStore() *DatasetStore {
	return &DatasetStore{
		Docs:              make([]model.Document, 0),
		ExternalIDToIndex: make(map[string]int),
	}
}

// AddDocuments appends documents, replacing existing ones that share a
// documentID.
func (ds *DatasetStore) AddDocuments(docs ...model.Document) {
	ds.Mu.Lock()
	defer ds.Mu.Unlock()

	for _, doc := range docs {
		if id, ok := doc.GetDocumentID(); ok {
			if pos, exists := ds.ExternalIDToIndex[id]; exists {
				ds.Docs[pos] = doc
				continue
			}
			ds.ExternalIDToIndex[id] = len(ds.Docs)
		}
		ds.Docs = append(ds.Docs, doc)
	}
}

// Snapshot returns a copy of the document slice for one search pass,
// so a search never observes concurrent additions mid-scan.
func (ds *DatasetStore) Snapshot() []model.Document {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()

	docs := make([]model.Document, len(ds.Docs))
	copy(docs, ds.Docs)
	return docs
}

// Count returns the number of stored documents.
func (ds *DatasetStore) Count() int {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()
	return len(ds.Docs)
}
