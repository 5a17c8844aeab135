package repository

import (
	"context"
	"sync"
	"time"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
)

var _ domain.SnapshotStore = (*InMemorySnapshotStore)(nil)

type snapshotEntry struct {
	matrix    domain.OutcomeMatrix
	expiresAt time.Time
}

// InMemorySnapshotStore holds outcome snapshots for a single process. It backs
// the API when Redis is not configured. A zero ttl keeps entries until they
// are invalidated.
type InMemorySnapshotStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[domain.ID]map[string]snapshotEntry
}

func NewInMemorySnapshotStore(ttl time.Duration) *InMemorySnapshotStore {
	return &InMemorySnapshotStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[domain.ID]map[string]snapshotEntry),
	}
}

func (s *InMemorySnapshotStore) Get(ctx context.Context, userID domain.ID, date string) (*domain.OutcomeMatrix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID][date]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.entries[userID], date)
		return nil, domain.ErrSnapshotNotFound
	}

	m := e.matrix
	return &m, nil
}

func (s *InMemorySnapshotStore) Set(ctx context.Context, userID domain.ID, date string, matrix *domain.OutcomeMatrix) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entries[userID] == nil {
		s.entries[userID] = make(map[string]snapshotEntry)
	}

	e := snapshotEntry{matrix: *matrix}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.entries[userID][date] = e
	return nil
}

func (s *InMemorySnapshotStore) Invalidate(ctx context.Context, userID domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, userID)
	return nil
}
