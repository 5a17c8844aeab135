package services_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id domain.ID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepo) ListByUserID(ctx context.Context, userID domain.ID) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id, userID domain.ID) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) Create(ctx context.Context, activity *domain.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *MockActivityRepo) GetByID(ctx context.Context, id domain.ID) (*domain.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

func (m *MockActivityRepo) ListByUserID(ctx context.Context, userID domain.ID) ([]domain.Activity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

func (m *MockActivityRepo) Update(ctx context.Context, activity *domain.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *MockActivityRepo) Delete(ctx context.Context, id, userID domain.ID) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockLogRepo struct {
	mock.Mock
}

func (m *MockLogRepo) ListByUserID(ctx context.Context, userID domain.ID, from, to string) ([]domain.LogEntry, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LogEntry), args.Error(1)
}

func (m *MockLogRepo) ReplaceDay(ctx context.Context, userID domain.ID, date string, activityIDs []domain.ID) error {
	return m.Called(ctx, userID, date, activityIDs).Error(0)
}

type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) Get(ctx context.Context, userID domain.ID, date string) (*domain.OutcomeMatrix, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutcomeMatrix), args.Error(1)
}

func (m *MockSnapshotStore) Set(ctx context.Context, userID domain.ID, date string, matrix *domain.OutcomeMatrix) error {
	return m.Called(ctx, userID, date, matrix).Error(0)
}

func (m *MockSnapshotStore) Invalidate(ctx context.Context, userID domain.ID) error {
	return m.Called(ctx, userID).Error(0)
}

type recordingQueue struct {
	mu    sync.Mutex
	users []domain.ID
}

func (q *recordingQueue) Enqueue(userID domain.ID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.users = append(q.users, userID)
}

func (q *recordingQueue) Enqueued() []domain.ID {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]domain.ID(nil), q.users...)
}
