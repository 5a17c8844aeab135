package domain

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"time"
)

var (
	ErrActivityNameEmpty    = errors.New("activity name cannot be empty")
	ErrActivityNameTooLong  = errors.New("activity name is too long (max 100 chars)")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidKind          = errors.New("invalid activity type (must be free or time-bound)")
	ErrInvalidScheduledTime = errors.New("invalid time format (must be HH:MM 24h)")
	ErrMissingScheduledTime = errors.New("time-bound activities require a time")
	ErrInvalidDailyHours    = errors.New("daily hours must be between 0 and 24")
)

var scheduledTimeRegex = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

type ActivityKind string

const (
	ActivityKindFree      ActivityKind = "free"
	ActivityKindTimeBound ActivityKind = "time-bound"

	MaxDailyHours = 24.0
)

func (k ActivityKind) IsValid() bool {
	switch k {
	case ActivityKindFree, ActivityKindTimeBound:
		return true
	default:
		return false
	}
}

type Activity struct {
	ID            ID           `json:"id" db:"id"`
	UserID        ID           `json:"user_id,omitempty" db:"user_id"`
	CategoryID    ID           `json:"category_id" db:"category_id"`
	Name          string       `json:"name" db:"name"`
	Kind          ActivityKind `json:"type" db:"type"`
	ScheduledTime *string      `json:"time,omitempty" db:"scheduled_time"`
	DailyHours    float64      `json:"hours" db:"daily_hours"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}

// IsTimeBound reports whether the activity carries a scheduled clock time.
func (a Activity) IsTimeBound() bool {
	return a.Kind == ActivityKindTimeBound && a.ScheduledTime != nil
}

func validateActivity(name string, kind ActivityKind, scheduled string, hours float64) (string, ActivityKind, *string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", "", nil, ErrActivityNameEmpty
	}
	if len(trimmed) > MaxNameLen {
		return "", "", nil, ErrActivityNameTooLong
	}

	if kind == "" {
		kind = ActivityKindFree
	}
	if !kind.IsValid() {
		return "", "", nil, ErrInvalidKind
	}

	if math.IsNaN(hours) || hours < 0 || hours > MaxDailyHours {
		return "", "", nil, ErrInvalidDailyHours
	}

	// free activities never keep a stale time around
	if kind == ActivityKindFree {
		return trimmed, kind, nil, nil
	}

	scheduled = strings.TrimSpace(scheduled)
	if scheduled == "" {
		return "", "", nil, ErrMissingScheduledTime
	}
	if !scheduledTimeRegex.MatchString(scheduled) {
		return "", "", nil, ErrInvalidScheduledTime
	}

	return trimmed, kind, &scheduled, nil
}

func NewActivity(userID, categoryID ID, name string, kind ActivityKind, scheduled string, hours float64) (*Activity, error) {
	if userID.IsZero() {
		return nil, ErrInvalidUserID
	}
	if categoryID.IsZero() {
		return nil, ErrInvalidCategory
	}

	cleanName, cleanKind, timePtr, err := validateActivity(name, kind, scheduled, hours)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Activity{
		ID:            NewID(),
		UserID:        userID,
		CategoryID:    categoryID,
		Name:          cleanName,
		Kind:          cleanKind,
		ScheduledTime: timePtr,
		DailyHours:    hours,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (a *Activity) Update(categoryID ID, name string, kind ActivityKind, scheduled string, hours float64) error {
	if categoryID.IsZero() {
		return ErrInvalidCategory
	}

	cleanName, cleanKind, timePtr, err := validateActivity(name, kind, scheduled, hours)
	if err != nil {
		return err
	}

	a.CategoryID = categoryID
	a.Name = cleanName
	a.Kind = cleanKind
	a.ScheduledTime = timePtr
	a.DailyHours = hours
	a.UpdatedAt = time.Now().UTC()
	return nil
}
