package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/aroma-cli/internal/core/domain"
	"github.com/custodia-labs/aroma-cli/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// ProfileStore is an in-memory implementation of driven.ProfileStore.
type ProfileStore struct {
	mu      sync.RWMutex
	records map[string]domain.ProfileRecord
}

// NewProfileStore creates a new in-memory profile store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		records: make(map[string]domain.ProfileRecord),
	}
}

// Save stores or updates a record.
func (s *ProfileStore) Save(_ context.Context, rec *domain.ProfileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = copyRecord(*rec)
	return nil
}

// Get retrieves a record by ID.
func (s *ProfileStore) Get(_ context.Context, id string) (*domain.ProfileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	rec = copyRecord(rec)
	return &rec, nil
}

// GetByURL retrieves the record read from url.
func (s *ProfileStore) GetByURL(_ context.Context, url string) (*domain.ProfileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.URL == url {
			rec = copyRecord(rec)
			return &rec, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns all records, most recently updated first.
func (s *ProfileStore) List(_ context.Context) ([]domain.ProfileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ProfileRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, copyRecord(rec))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// Delete removes a record.
func (s *ProfileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

// copyRecord detaches the profile map so callers cannot mutate stored state.
func copyRecord(rec domain.ProfileRecord) domain.ProfileRecord {
	if rec.Profile != nil {
		profile := make(domain.FlavourProfile, len(rec.Profile))
		for k, v := range rec.Profile {
			profile[k] = v
		}
		rec.Profile = profile
	}
	return rec
}
