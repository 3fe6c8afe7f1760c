package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/ezBadminton/gobracket/core"
)

// MemoryStore keeps the encoded brackets in a map. The
// brackets are encoded so that a caller can not change a
// stored bracket through a shared slice.
type MemoryStore struct {
	mu       sync.RWMutex
	brackets map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{brackets: make(map[string][]byte)}
}

func (s *MemoryStore) Save(ctx context.Context, tournamentID string, bracket *core.Bracket) error {
	data, err := json.Marshal(bracket)
	if err != nil {
		return fmt.Errorf("encode bracket %v: %w", tournamentID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.brackets[tournamentID] = data

	return nil
}

func (s *MemoryStore) Load(ctx context.Context, tournamentID string) (*core.Bracket, error) {
	s.mu.RLock()
	data, ok := s.brackets[tournamentID]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, tournamentID)
	}

	bracket := &core.Bracket{}
	if err := json.Unmarshal(data, bracket); err != nil {
		return nil, fmt.Errorf("decode bracket %v: %w", tournamentID, err)
	}

	return bracket, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.brackets))
	for id := range s.brackets {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids, nil
}

func (s *MemoryStore) Delete(ctx context.Context, tournamentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.brackets[tournamentID]; !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, tournamentID)
	}
	delete(s.brackets, tournamentID)

	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
