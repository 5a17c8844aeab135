package services

import (
	"context"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
)

type CategoryService struct {
	repo  domain.CategoryRepository
	queue SnapshotQueue
}

func NewCategoryService(repo domain.CategoryRepository, queue SnapshotQueue) *CategoryService {
	return &CategoryService{
		repo:  repo,
		queue: queue,
	}
}

type CreateCategoryInput struct {
	UserID domain.ID
	Name   string
	Color  string
}

type UpdateCategoryInput struct {
	ID     domain.ID
	UserID domain.ID
	Name   string
	Color  string
}

func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	category, err := domain.NewCategory(input.UserID, input.Name, input.Color)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) ListByUserID(ctx context.Context, userID domain.ID) ([]domain.Category, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// GetByID hides categories of other users behind ErrCategoryNotFound.
func (s *CategoryService) GetByID(ctx context.Context, id, userID domain.ID) (*domain.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category.UserID != userID {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.GetByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	name := mergeString(input.Name, category.Name)
	color := mergeString(input.Color, category.Color)

	if err := category.Update(name, color); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}

	// the name drives outcome weights
	notify(s.queue, input.UserID)

	return category, nil
}

// Delete removes the category together with its activities and their logs.
func (s *CategoryService) Delete(ctx context.Context, id, userID domain.ID) error {
	if _, err := s.GetByID(ctx, id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}

	notify(s.queue, userID)
	return nil
}
