package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/services"
)

func ptr[T any](v T) *T {
	return &v
}

func TestActivityService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		category *domain.Category
		catErr   error
		input    services.CreateActivityInput
		wantErr  error
	}{
		{
			name:     "Success: time-bound activity in own category",
			category: &domain.Category{ID: "c1", UserID: "u1"},
			input:    services.CreateActivityInput{UserID: "u1", CategoryID: "c1", Name: "Run", Kind: domain.ActivityKindTimeBound, ScheduledTime: "07:00", DailyHours: 1},
		},
		{
			name:     "Error: category owned by someone else",
			category: &domain.Category{ID: "c1", UserID: "other"},
			input:    services.CreateActivityInput{UserID: "u1", CategoryID: "c1", Name: "Run", DailyHours: 1},
			wantErr:  domain.ErrInvalidCategory,
		},
		{
			name:    "Error: category does not exist",
			catErr:  domain.ErrCategoryNotFound,
			input:   services.CreateActivityInput{UserID: "u1", CategoryID: "c1", Name: "Run", DailyHours: 1},
			wantErr: domain.ErrInvalidCategory,
		},
		{
			name:    "Error: invalid hours never reach storage",
			input:   services.CreateActivityInput{UserID: "u1", CategoryID: "c1", Name: "Run", DailyHours: 30},
			wantErr: domain.ErrInvalidDailyHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockActivityRepo)
			catRepo := new(MockCategoryRepo)
			queue := &recordingQueue{}
			svc := services.NewActivityService(repo, catRepo, queue)

			if tt.category != nil || tt.catErr != nil {
				catRepo.On("GetByID", ctx, domain.ID("c1")).Return(tt.category, tt.catErr)
			}
			repo.On("Create", ctx, mock.AnythingOfType("*domain.Activity")).Return(nil).Maybe()

			a, err := svc.Create(ctx, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				assert.Empty(t, queue.Enqueued())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, ptr("07:00"), a.ScheduledTime)
			assert.Equal(t, []domain.ID{"u1"}, queue.Enqueued())
		})
	}
}

func TestActivityService_Update(t *testing.T) {
	ctx := context.Background()

	newExisting := func() *domain.Activity {
		return &domain.Activity{
			ID: "a1", UserID: "u1", CategoryID: "c1", Name: "Run",
			Kind: domain.ActivityKindTimeBound, ScheduledTime: ptr("07:00"), DailyHours: 1,
		}
	}

	t.Run("Success: partial update keeps the rest", func(t *testing.T) {
		repo := new(MockActivityRepo)
		svc := services.NewActivityService(repo, new(MockCategoryRepo), nil)

		existing := newExisting()
		repo.On("GetByID", ctx, domain.ID("a1")).Return(existing, nil)
		repo.On("Update", ctx, existing).Return(nil)

		a, err := svc.Update(ctx, services.UpdateActivityInput{ID: "a1", UserID: "u1", DailyHours: ptr(0.0)})

		require.NoError(t, err)
		assert.Equal(t, "Run", a.Name)
		assert.Equal(t, ptr("07:00"), a.ScheduledTime)
		assert.Zero(t, a.DailyHours)
	})

	t.Run("Success: switching to free clears the time", func(t *testing.T) {
		repo := new(MockActivityRepo)
		svc := services.NewActivityService(repo, new(MockCategoryRepo), nil)

		existing := newExisting()
		repo.On("GetByID", ctx, domain.ID("a1")).Return(existing, nil)
		repo.On("Update", ctx, existing).Return(nil)

		a, err := svc.Update(ctx, services.UpdateActivityInput{ID: "a1", UserID: "u1", Kind: domain.ActivityKindFree})

		require.NoError(t, err)
		assert.Nil(t, a.ScheduledTime)
	})

	t.Run("Error: moving to a foreign category", func(t *testing.T) {
		repo := new(MockActivityRepo)
		catRepo := new(MockCategoryRepo)
		svc := services.NewActivityService(repo, catRepo, nil)

		repo.On("GetByID", ctx, domain.ID("a1")).Return(newExisting(), nil)
		catRepo.On("GetByID", ctx, domain.ID("c2")).Return(&domain.Category{ID: "c2", UserID: "other"}, nil)

		_, err := svc.Update(ctx, services.UpdateActivityInput{ID: "a1", UserID: "u1", CategoryID: "c2"})

		assert.ErrorIs(t, err, domain.ErrInvalidCategory)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Error: other user's activity", func(t *testing.T) {
		repo := new(MockActivityRepo)
		svc := services.NewActivityService(repo, new(MockCategoryRepo), nil)

		repo.On("GetByID", ctx, domain.ID("a1")).Return(newExisting(), nil)

		_, err := svc.Update(ctx, services.UpdateActivityInput{ID: "a1", UserID: "intruder", Name: "Mine"})
		assert.ErrorIs(t, err, domain.ErrActivityNotFound)
	})
}

func TestActivityService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockActivityRepo)
	queue := &recordingQueue{}
	svc := services.NewActivityService(repo, new(MockCategoryRepo), queue)

	repo.On("GetByID", ctx, domain.ID("a1")).Return(&domain.Activity{ID: "a1", UserID: "u1"}, nil)
	repo.On("Delete", ctx, domain.ID("a1"), domain.ID("u1")).Return(nil)

	require.NoError(t, svc.Delete(ctx, "a1", "u1"))
	assert.Equal(t, []domain.ID{"u1"}, queue.Enqueued())
	repo.AssertExpectations(t)
}
