package testutil

import (
	"context"
	"sync"
)

// MemoryDocuments is a map-backed document store for tests that need many
// isolated stores, such as property tests.
type MemoryDocuments struct {
	mu        sync.Mutex
	documents map[string]string
}

func NewMemoryDocuments() *MemoryDocuments {
	return &MemoryDocuments{documents: make(map[string]string)}
}

func (store *MemoryDocuments) Load(ctx context.Context, key string) (string, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	value, found := store.documents[key]
	return value, found, nil
}

func (store *MemoryDocuments) Save(ctx context.Context, key string, value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.documents[key] = value
	return nil
}

func (store *MemoryDocuments) Delete(ctx context.Context, key string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.documents, key)
	return nil
}
