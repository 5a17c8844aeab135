package services

import (
	"context"
	"fmt"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
	"github.com/comitanigiacomo/lifesync-engine/internal/observability"
)

type LogService struct {
	repo         domain.LogRepository
	activityRepo domain.ActivityRepository
	queue        SnapshotQueue
}

func NewLogService(repo domain.LogRepository, activityRepo domain.ActivityRepository, queue SnapshotQueue) *LogService {
	return &LogService{
		repo:         repo,
		activityRepo: activityRepo,
		queue:        queue,
	}
}

type SaveDayInput struct {
	UserID      domain.ID
	Date        string
	ActivityIDs []domain.ID
}

func normalizeDate(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	t, err := domain.ParseDate(s)
	if err != nil {
		return "", err
	}
	return domain.FormatDate(t), nil
}

// GetLogs returns the user's completions between from and to, both optional.
func (s *LogService) GetLogs(ctx context.Context, userID domain.ID, from, to string) (domain.LogBook, error) {
	from, err := normalizeDate(from)
	if err != nil {
		return nil, err
	}
	to, err = normalizeDate(to)
	if err != nil {
		return nil, err
	}
	if from != "" && to != "" && from > to {
		return nil, domain.ErrInvalidDateRange
	}

	entries, err := s.repo.ListByUserID(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("log service: failed to list logs: %w", err)
	}

	return domain.BuildLogBook(entries), nil
}

// SaveDay replaces the completed set of one date. Ids the user does not own
// are dropped silently; the ids actually stored are returned.
func (s *LogService) SaveDay(ctx context.Context, input SaveDayInput) ([]domain.ID, error) {
	date, err := normalizeDate(input.Date)
	if err != nil {
		return nil, err
	}
	if date == "" {
		return nil, domain.ErrInvalidDate
	}

	activities, err := s.activityRepo.ListByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("log service: failed to list activities: %w", err)
	}

	owned := make(map[domain.ID]bool, len(activities))
	for _, a := range activities {
		owned[a.ID] = true
	}

	saved := make([]domain.ID, 0, len(input.ActivityIDs))
	for _, id := range domain.UniqueIDs(input.ActivityIDs) {
		if owned[id] {
			saved = append(saved, id)
		}
	}

	if err := s.repo.ReplaceDay(ctx, input.UserID, date, saved); err != nil {
		return nil, fmt.Errorf("log service: failed to save day %s: %w", date, err)
	}

	observability.RecordLogDaySaved()
	notify(s.queue, input.UserID)

	return saved, nil
}
