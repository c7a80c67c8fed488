package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/cup-results/internal/domain/document"
)

// DocumentStore keeps documents in process memory. Used by tests and by the
// service when STORAGE_DRIVER=memory.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewDocumentStore(seed map[string][]byte) *DocumentStore {
	docs := make(map[string][]byte, len(seed))
	for name, data := range seed {
		docs[name] = append([]byte(nil), data...)
	}
	return &DocumentStore{docs: docs}
}

func (s *DocumentStore) Load(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.docs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", document.ErrNotFound, name)
	}
	return append([]byte(nil), data...), nil
}

func (s *DocumentStore) Save(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[name] = append([]byte(nil), data...)
	return nil
}
