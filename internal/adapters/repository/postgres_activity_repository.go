package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
)

var _ domain.ActivityRepository = (*PostgresActivityRepository)(nil)

type PostgresActivityRepository struct {
	db *sqlx.DB
}

func NewPostgresActivityRepository(db *sqlx.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

const activityColumns = `id, user_id, category_id, name, type, scheduled_time, daily_hours, created_at, updated_at`

func (r *PostgresActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	query := `
		INSERT INTO activities (` + activityColumns + `)
		VALUES (:id, :user_id, :category_id, :name, :type, :scheduled_time, :daily_hours, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, a); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidCategory
		}
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	return nil
}

func (r *PostgresActivityRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Activity, error) {
	var a domain.Activity
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`

	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}
	return &a, nil
}

func (r *PostgresActivityRepository) ListByUserID(ctx context.Context, userID domain.ID) ([]domain.Activity, error) {
	activities := []domain.Activity{}
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC`

	if err := r.db.SelectContext(ctx, &activities, query, userID); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return activities, nil
}

func (r *PostgresActivityRepository) Update(ctx context.Context, a *domain.Activity) error {
	query := `
		UPDATE activities SET
			category_id = :category_id, name = :name, type = :type,
			scheduled_time = :scheduled_time, daily_hours = :daily_hours, updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id`

	res, err := r.db.NamedExecContext(ctx, query, a)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidCategory
		}
		return fmt.Errorf("update query failed: %w", err)
	}
	return expectOneRow(res, domain.ErrActivityNotFound)
}

func (r *PostgresActivityRepository) Delete(ctx context.Context, id, userID domain.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}
	return expectOneRow(res, domain.ErrActivityNotFound)
}
