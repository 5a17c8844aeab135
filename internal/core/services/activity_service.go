package services

import (
	"context"
	"errors"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
)

type ActivityService struct {
	repo         domain.ActivityRepository
	categoryRepo domain.CategoryRepository
	queue        SnapshotQueue
}

func NewActivityService(repo domain.ActivityRepository, categoryRepo domain.CategoryRepository, queue SnapshotQueue) *ActivityService {
	return &ActivityService{
		repo:         repo,
		categoryRepo: categoryRepo,
		queue:        queue,
	}
}

type CreateActivityInput struct {
	UserID        domain.ID
	CategoryID    domain.ID
	Name          string
	Kind          domain.ActivityKind
	ScheduledTime string
	DailyHours    float64
}

// UpdateActivityInput leaves a field unchanged when it is empty (or nil for
// DailyHours).
type UpdateActivityInput struct {
	ID            domain.ID
	UserID        domain.ID
	CategoryID    domain.ID
	Name          string
	Kind          domain.ActivityKind
	ScheduledTime string
	DailyHours    *float64
}

func (s *ActivityService) ensureCategory(ctx context.Context, categoryID, userID domain.ID) error {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return domain.ErrInvalidCategory
		}
		return err
	}
	if category.UserID != userID {
		return domain.ErrInvalidCategory
	}
	return nil
}

func (s *ActivityService) Create(ctx context.Context, input CreateActivityInput) (*domain.Activity, error) {
	activity, err := domain.NewActivity(input.UserID, input.CategoryID, input.Name, input.Kind, input.ScheduledTime, input.DailyHours)
	if err != nil {
		return nil, err
	}

	if err := s.ensureCategory(ctx, activity.CategoryID, input.UserID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, err
	}

	notify(s.queue, input.UserID)
	return activity, nil
}

func (s *ActivityService) ListByUserID(ctx context.Context, userID domain.ID) ([]domain.Activity, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *ActivityService) GetByID(ctx context.Context, id, userID domain.ID) (*domain.Activity, error) {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity.UserID != userID {
		return nil, domain.ErrActivityNotFound
	}
	return activity, nil
}

func (s *ActivityService) Update(ctx context.Context, input UpdateActivityInput) (*domain.Activity, error) {
	activity, err := s.GetByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	categoryID := activity.CategoryID
	if !input.CategoryID.IsZero() && input.CategoryID != activity.CategoryID {
		if err := s.ensureCategory(ctx, input.CategoryID, input.UserID); err != nil {
			return nil, err
		}
		categoryID = input.CategoryID
	}

	kind := input.Kind
	if kind == "" {
		kind = activity.Kind
	}

	scheduled := input.ScheduledTime
	if scheduled == "" && activity.ScheduledTime != nil {
		scheduled = *activity.ScheduledTime
	}

	hours := activity.DailyHours
	if input.DailyHours != nil {
		hours = *input.DailyHours
	}

	err = activity.Update(categoryID, mergeString(input.Name, activity.Name), kind, scheduled, hours)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, activity); err != nil {
		return nil, err
	}

	notify(s.queue, input.UserID)
	return activity, nil
}

func (s *ActivityService) Delete(ctx context.Context, id, userID domain.ID) error {
	if _, err := s.GetByID(ctx, id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}

	notify(s.queue, userID)
	return nil
}
