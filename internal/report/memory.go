package report

import (
	"context"
	"sort"
	"sync"
	"time"

	"resqline.org/internal/ids"
)

var _ Store = (*InMemoryStore)(nil)

// InMemoryStore implements Store with in-process concurrency safety. Used by
// tests; the server always runs against PostgreSQL.
type InMemoryStore struct {
	mu      sync.RWMutex
	reports []Report
}

// NewInMemoryStore creates an empty store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Create(ctx context.Context, r *Report) error {
	if !ValidSeverity(r.Severity) || !ValidStatus(r.Status) {
		return ErrInvalidValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = ids.New()
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	s.reports = append(s.reports, *r)
	return nil
}

func (s *InMemoryStore) ListRecent(ctx context.Context, limit int) ([]Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Report, len(s.reports))
	copy(out, s.reports)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
