package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/analytics"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
	"github.com/comitanigiacomo/lifesync-engine/internal/observability"
)

// StatsService loads a user's data and hands it to the analytics engine.
// today is always supplied by the caller, already in the user's timezone.
type StatsService struct {
	categoryRepo domain.CategoryRepository
	activityRepo domain.ActivityRepository
	logRepo      domain.LogRepository
	snapshots    domain.SnapshotStore
	projector    analytics.Projector
}

// NewStatsService wires the repositories. snapshots may be nil, in which case
// outcomes are computed on every request.
func NewStatsService(categoryRepo domain.CategoryRepository, activityRepo domain.ActivityRepository, logRepo domain.LogRepository, snapshots domain.SnapshotStore, projector analytics.Projector) *StatsService {
	return &StatsService{
		categoryRepo: categoryRepo,
		activityRepo: activityRepo,
		logRepo:      logRepo,
		snapshots:    snapshots,
		projector:    projector,
	}
}

// StreakHistoryDays bounds the log history the dashboard reads. Longest
// streaks are reported within this window.
const StreakHistoryDays = 730

func streakWindowStart(today time.Time) string {
	return domain.FormatDate(today.AddDate(0, 0, -(StreakHistoryDays - 1)))
}

type userData struct {
	categories []domain.Category
	activities []domain.Activity
	logs       domain.LogBook
}

func (s *StatsService) load(ctx context.Context, userID domain.ID, from, to string) (*userData, error) {
	categories, err := s.categoryRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats service: failed to list categories: %w", err)
	}

	activities, err := s.activityRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats service: failed to list activities: %w", err)
	}

	entries, err := s.logRepo.ListByUserID(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("stats service: failed to list logs: %w", err)
	}

	return &userData{
		categories: categories,
		activities: activities,
		logs:       domain.BuildLogBook(entries),
	}, nil
}

func (s *StatsService) Range(kind analytics.RangeKind, today time.Time) domain.DateRange {
	return analytics.RangeDates(kind, today)
}

func (s *StatsService) Schedule(ctx context.Context, userID domain.ID) ([]domain.TimePeriod, error) {
	defer observability.ObserveAnalytics("schedule", time.Now())

	activities, err := s.activityRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats service: failed to list activities: %w", err)
	}

	return analytics.GroupByPeriod(analytics.SortByTime(activities)), nil
}

func (s *StatsService) Dashboard(ctx context.Context, userID domain.ID, today time.Time) (*domain.Dashboard, error) {
	defer observability.ObserveAnalytics("dashboard", time.Now())

	data, err := s.load(ctx, userID, streakWindowStart(today), domain.FormatDate(today))
	if err != nil {
		return nil, err
	}

	week := analytics.RangeDates(analytics.RangeCurrentWeek, today)

	return &domain.Dashboard{
		Today:          domain.FormatDate(today),
		Week:           week,
		Consistency:    analytics.OverallCompletion(data.activities, data.logs, week, today),
		Energy:         analytics.EnergyBalance(data.activities, data.categories, data.logs, week, today, nil),
		TotalHours:     analytics.TotalDailyHours(data.activities),
		RemainingHours: analytics.RemainingHours(data.activities),
		Streaks:        analytics.Streaks(data.activities, data.logs, today),
		Schedule:       analytics.GroupByPeriod(analytics.SortByTime(data.activities)),
	}, nil
}

// CategoryAnalytics rates every category over the range and compares it with
// the period just before.
func (s *StatsService) CategoryAnalytics(ctx context.Context, userID domain.ID, kind analytics.RangeKind, today time.Time) (*domain.CategoryAnalytics, error) {
	defer observability.ObserveAnalytics("categories", time.Now())

	dates := analytics.RangeDates(kind, today)
	previous := analytics.PreviousRangeDates(kind, today)

	data, err := s.load(ctx, userID, previous.First(), dates.Last())
	if err != nil {
		return nil, err
	}

	current := analytics.CategoryPerformance(data.categories, data.activities, data.logs, dates, today)
	before := analytics.CategoryPerformance(data.categories, data.activities, data.logs, previous, today)

	for i := range current {
		current[i].Trend = analytics.Trend(current[i].Rate, before[i].Rate)
	}

	return &domain.CategoryAnalytics{
		Range:      string(kind),
		Dates:      dates,
		Categories: current,
	}, nil
}

// ActivityAnalytics reports every activity, or only those of categoryID when
// it is set, split at the performing-well threshold.
func (s *StatsService) ActivityAnalytics(ctx context.Context, userID domain.ID, kind analytics.RangeKind, categoryID domain.ID, today time.Time) (*domain.ActivityAnalytics, error) {
	defer observability.ObserveAnalytics("activities", time.Now())

	dates := analytics.RangeDates(kind, today)

	data, err := s.load(ctx, userID, dates.First(), dates.Last())
	if err != nil {
		return nil, err
	}

	activities := data.activities
	if !categoryID.IsZero() {
		activities = make([]domain.Activity, 0, len(data.activities))
		for _, a := range data.activities {
			if a.CategoryID == categoryID {
				activities = append(activities, a)
			}
		}
	}

	reports := analytics.ActivityPerformance(activities, data.logs, kind, today)
	well, attention := analytics.SplitByThreshold(reports, analytics.PerformingWellThreshold)

	return &domain.ActivityAnalytics{
		Range:          string(kind),
		Reports:        reports,
		PerformingWell: well,
		NeedsAttention: attention,
	}, nil
}

func (s *StatsService) computeOutcomes(ctx context.Context, userID domain.ID, today time.Time) (*domain.OutcomeMatrix, error) {
	defer observability.ObserveAnalytics("outcomes", time.Now())

	window := max(s.projector.ComplianceWindow, 1)
	from := today.AddDate(0, 0, -(window - 1))

	data, err := s.load(ctx, userID, domain.FormatDate(from), domain.FormatDate(today))
	if err != nil {
		return nil, err
	}

	matrix := s.projector.Project(data.categories, data.activities, data.logs, today)
	return &matrix, nil
}

// Outcomes serves the projection from the snapshot store when it holds one
// for today, computing and storing it otherwise.
func (s *StatsService) Outcomes(ctx context.Context, userID domain.ID, today time.Time) (*domain.OutcomeMatrix, error) {
	date := domain.FormatDate(today)

	if s.snapshots != nil {
		matrix, err := s.snapshots.Get(ctx, userID, date)
		if err == nil {
			observability.RecordSnapshotHit()
			return matrix, nil
		}
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			log.Printf("[SNAPSHOT] read failed for %s: %v", userID, err)
		}
		observability.RecordSnapshotMiss()
	}

	matrix, err := s.computeOutcomes(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	if s.snapshots != nil {
		if err := s.snapshots.Set(ctx, userID, date, matrix); err != nil {
			log.Printf("[SNAPSHOT] write failed for %s: %v", userID, err)
		}
	}

	return matrix, nil
}

// RefreshOutcomes runs after the user's data changed. Every stored snapshot
// may predate the change, so all of them are dropped before today's is
// recomputed.
func (s *StatsService) RefreshOutcomes(ctx context.Context, userID domain.ID, today time.Time) error {
	if s.snapshots == nil {
		return nil
	}

	if err := s.snapshots.Invalidate(ctx, userID); err != nil {
		return fmt.Errorf("stats service: failed to invalidate snapshots: %w", err)
	}

	matrix, err := s.computeOutcomes(ctx, userID, today)
	if err != nil {
		return err
	}
	return s.snapshots.Set(ctx, userID, domain.FormatDate(today), matrix)
}
