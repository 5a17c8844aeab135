package domain

import (
	"context"
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id ID) (*User, error)
}

type CategoryRepository interface {
	// Create persists a new category for its owner.
	Create(ctx context.Context, category *Category) error
	// GetByID retrieves a category regardless of owner; callers check ownership.
	GetByID(ctx context.Context, id ID) (*Category, error)
	// ListByUserID returns the user's categories in creation order.
	ListByUserID(ctx context.Context, userID ID) ([]Category, error)
	Update(ctx context.Context, category *Category) error
	// Delete removes the category and, through the storage cascade, its
	// activities and their logs. userID guards against cross-user deletes.
	Delete(ctx context.Context, id ID, userID ID) error
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) error
	GetByID(ctx context.Context, id ID) (*Activity, error)
	// ListByUserID returns the user's activities in creation order.
	ListByUserID(ctx context.Context, userID ID) ([]Activity, error)
	Update(ctx context.Context, activity *Activity) error
	Delete(ctx context.Context, id ID, userID ID) error
}

type LogRepository interface {
	// ListByUserID returns completions between from and to inclusive.
	// An empty bound leaves that side of the range open.
	ListByUserID(ctx context.Context, userID ID, from, to string) ([]LogEntry, error)
	// ReplaceDay atomically swaps the completed set of a single date.
	ReplaceDay(ctx context.Context, userID ID, date string, activityIDs []ID) error
}

// SnapshotStore keeps precomputed outcome matrices keyed by user and date.
// Get returns ErrSnapshotNotFound on a miss. Invalidate drops every date
// stored for the user.
type SnapshotStore interface {
	Get(ctx context.Context, userID ID, date string) (*OutcomeMatrix, error)
	Set(ctx context.Context, userID ID, date string, matrix *OutcomeMatrix) error
	Invalidate(ctx context.Context, userID ID) error
}
