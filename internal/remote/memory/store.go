// Package memory provides an in-memory remote.Store used in tests and
// offline development. Failures can be injected per operation.
package memory

import (
	"context"
	"sync"

	"github.com/mpavlenko/recipekeeper/internal/client/models"
)

type Store struct {
	mu      sync.Mutex
	records map[string]*models.UserRecord

	// FetchErr and MergeErr, when set, are returned by the corresponding
	// operation instead of touching the map.
	FetchErr error
	MergeErr error

	// MergeCalls counts accepted merges.
	MergeCalls int
}

func NewStore() *Store {
	return &Store{records: make(map[string]*models.UserRecord)}
}

func (s *Store) Fetch(ctx context.Context, userID string) (*models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FetchErr != nil {
		return nil, s.FetchErr
	}

	rec, ok := s.records[userID]
	if !ok {
		return &models.UserRecord{}, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *Store) Merge(ctx context.Context, userID string, patch models.RecordPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.MergeErr != nil {
		return s.MergeErr
	}

	rec, ok := s.records[userID]
	if !ok {
		rec = &models.UserRecord{}
		s.records[userID] = rec
	}
	patch.Apply(rec)
	s.MergeCalls++
	return nil
}

// Seed replaces the stored record for userID. Test helper.
func (s *Store) Seed(userID string, rec models.UserRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[userID] = &rec
}
