package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
)

// InMemoryStore keeps every entity in process memory behind one lock so the
// category -> activity -> log cascade stays consistent. It backs the CLI,
// which loads an export file, and the API when no database is configured.
type InMemoryStore struct {
	mu sync.RWMutex

	users      map[domain.ID]*domain.User
	categories map[domain.ID]*domain.Category
	activities map[domain.ID]*domain.Activity
	logs       map[domain.ID]map[string][]domain.LogEntry
	last       time.Time

	allowOrphans bool
}

type StoreOption func(*InMemoryStore)

// WithOrphanActivities accepts activities whose category does not exist.
// Imported exports can carry them, and the analytics still count their hours
// and completions.
func WithOrphanActivities() StoreOption {
	return func(s *InMemoryStore) { s.allowOrphans = true }
}

func NewInMemoryStore(opts ...StoreOption) *InMemoryStore {
	s := &InMemoryStore{
		users:      make(map[domain.ID]*domain.User),
		categories: make(map[domain.ID]*domain.Category),
		activities: make(map[domain.ID]*domain.Activity),
		logs:       make(map[domain.ID]map[string][]domain.LogEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ownsCategory reports whether an activity of userID may point at categoryID.
// The caller holds the lock.
func (s *InMemoryStore) ownsCategory(categoryID, userID domain.ID) bool {
	c, ok := s.categories[categoryID]
	if !ok {
		return s.allowOrphans
	}
	return c.UserID == userID
}

func (s *InMemoryStore) Users() *InMemoryUserRepository { return &InMemoryUserRepository{s: s} }

func (s *InMemoryStore) Categories() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{s: s}
}

func (s *InMemoryStore) Activities() *InMemoryActivityRepository {
	return &InMemoryActivityRepository{s: s}
}

func (s *InMemoryStore) Logs() *InMemoryLogRepository { return &InMemoryLogRepository{s: s} }

// stamp returns t, nudged forward when needed so that creation times are
// strictly increasing in insertion order.
func (s *InMemoryStore) stamp(t time.Time) time.Time {
	if !t.After(s.last) {
		t = s.last.Add(time.Nanosecond)
	}
	s.last = t
	return t
}

// deleteActivity must be called with the write lock held.
func (s *InMemoryStore) deleteActivity(id domain.ID) {
	a, ok := s.activities[id]
	if !ok {
		return
	}
	delete(s.activities, id)

	for date, entries := range s.logs[a.UserID] {
		kept := entries[:0]
		for _, e := range entries {
			if e.ActivityID != id {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			delete(s.logs[a.UserID], date)
		} else {
			s.logs[a.UserID][date] = kept
		}
	}
}

type InMemoryUserRepository struct{ s *InMemoryStore }

var _ domain.UserRepository = (*InMemoryUserRepository)(nil)

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}

	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

type InMemoryCategoryRepository struct{ s *InMemoryStore }

var _ domain.CategoryRepository = (*InMemoryCategoryRepository)(nil)

func (r *InMemoryCategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *c
	cp.CreatedAt = r.s.stamp(c.CreatedAt)
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *InMemoryCategoryRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *InMemoryCategoryRepository) ListByUserID(ctx context.Context, userID domain.ID) ([]domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	categories := []domain.Category{}
	for _, c := range r.s.categories {
		if c.UserID == userID {
			categories = append(categories, *c)
		}
	}

	sort.SliceStable(categories, func(i, j int) bool {
		if !categories[i].CreatedAt.Equal(categories[j].CreatedAt) {
			return categories[i].CreatedAt.Before(categories[j].CreatedAt)
		}
		return categories[i].ID < categories[j].ID
	})
	return categories, nil
}

func (r *InMemoryCategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.categories[c.ID]
	if !ok || existing.UserID != c.UserID {
		return domain.ErrCategoryNotFound
	}

	cp := *c
	cp.CreatedAt = existing.CreatedAt
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *InMemoryCategoryRepository) Delete(ctx context.Context, id, userID domain.ID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.categories[id]
	if !ok || c.UserID != userID {
		return domain.ErrCategoryNotFound
	}

	for aid, a := range r.s.activities {
		if a.CategoryID == id {
			r.s.deleteActivity(aid)
		}
	}
	delete(r.s.categories, id)
	return nil
}

type InMemoryActivityRepository struct{ s *InMemoryStore }

var _ domain.ActivityRepository = (*InMemoryActivityRepository)(nil)

func (r *InMemoryActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.ownsCategory(a.CategoryID, a.UserID) {
		return domain.ErrInvalidCategory
	}

	cp := *a
	cp.CreatedAt = r.s.stamp(a.CreatedAt)
	r.s.activities[a.ID] = &cp
	return nil
}

func (r *InMemoryActivityRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.activities[id]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *InMemoryActivityRepository) ListByUserID(ctx context.Context, userID domain.ID) ([]domain.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	activities := []domain.Activity{}
	for _, a := range r.s.activities {
		if a.UserID == userID {
			activities = append(activities, *a)
		}
	}

	sort.SliceStable(activities, func(i, j int) bool {
		if !activities[i].CreatedAt.Equal(activities[j].CreatedAt) {
			return activities[i].CreatedAt.Before(activities[j].CreatedAt)
		}
		return activities[i].ID < activities[j].ID
	})
	return activities, nil
}

func (r *InMemoryActivityRepository) Update(ctx context.Context, a *domain.Activity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.activities[a.ID]
	if !ok || existing.UserID != a.UserID {
		return domain.ErrActivityNotFound
	}
	if !r.s.ownsCategory(a.CategoryID, a.UserID) {
		return domain.ErrInvalidCategory
	}

	cp := *a
	cp.CreatedAt = existing.CreatedAt
	r.s.activities[a.ID] = &cp
	return nil
}

func (r *InMemoryActivityRepository) Delete(ctx context.Context, id, userID domain.ID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.activities[id]
	if !ok || a.UserID != userID {
		return domain.ErrActivityNotFound
	}

	r.s.deleteActivity(id)
	return nil
}

type InMemoryLogRepository struct{ s *InMemoryStore }

var _ domain.LogRepository = (*InMemoryLogRepository)(nil)

func (r *InMemoryLogRepository) ListByUserID(ctx context.Context, userID domain.ID, from, to string) ([]domain.LogEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := []domain.LogEntry{}
	for date, day := range r.s.logs[userID] {
		if from != "" && date < from {
			continue
		}
		if to != "" && date > to {
			continue
		}
		entries = append(entries, day...)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}

func (r *InMemoryLogRepository) ReplaceDay(ctx context.Context, userID domain.ID, date string, activityIDs []domain.ID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := domain.UniqueIDs(activityIDs)
	day := make([]domain.LogEntry, 0, len(ids))
	for _, id := range ids {
		if _, ok := r.s.activities[id]; !ok {
			return domain.ErrActivityNotFound
		}
		day = append(day, domain.LogEntry{
			UserID:     userID,
			ActivityID: id,
			Date:       date,
			CreatedAt:  r.s.stamp(time.Now().UTC()),
		})
	}

	if r.s.logs[userID] == nil {
		r.s.logs[userID] = make(map[string][]domain.LogEntry)
	}
	if len(day) == 0 {
		delete(r.s.logs[userID], date)
		return nil
	}
	r.s.logs[userID][date] = day
	return nil
}
