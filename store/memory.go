package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps documents in process memory. Contents are lost on exit.
type MemoryStore struct {
	mu    sync.RWMutex
	name  string
	colls map[string][]Document
}

func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{name: name, colls: make(map[string][]Document)}
}

func (m *MemoryStore) CreateDocument(_ context.Context, kind Kind, record any) (string, error) {
	doc, err := ToDocument(record)
	if err != nil {
		return "", storeErr("create", kind, err)
	}
	id := uuid.NewString()
	doc[IDField] = id

	m.mu.Lock()
	defer m.mu.Unlock()
	m.colls[kind.Collection()] = append(m.colls[kind.Collection()], doc)
	return id, nil
}

func (m *MemoryStore) GetDocuments(_ context.Context, kind Kind) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored := m.colls[kind.Collection()]
	docs := make([]Document, 0, len(stored))
	for _, d := range stored {
		docs = append(docs, d.clone())
	}
	return docs, nil
}

// Count returns the number of documents of kind.
func (m *MemoryStore) Count(kind Kind) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.colls[kind.Collection()])
}

func (m *MemoryStore) ListCollections(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.colls))
	for name := range m.colls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStore) Name() string    { return m.name }
func (m *MemoryStore) Available() bool { return true }
func (m *MemoryStore) Close() error    { return nil }
