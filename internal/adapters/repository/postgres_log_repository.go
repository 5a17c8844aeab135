package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
)

var _ domain.LogRepository = (*PostgresLogRepository)(nil)

type PostgresLogRepository struct {
	db *sqlx.DB
}

func NewPostgresLogRepository(db *sqlx.DB) *PostgresLogRepository {
	return &PostgresLogRepository{db: db}
}

func (r *PostgresLogRepository) ListByUserID(ctx context.Context, userID domain.ID, from, to string) ([]domain.LogEntry, error) {
	entries := []domain.LogEntry{}

	// dates go out as text so the civil date never picks up a timezone
	query := `SELECT user_id, activity_id, to_char(date, 'YYYY-MM-DD') AS date, created_at FROM logs WHERE user_id = $1`
	args := []any{userID}

	if from != "" {
		args = append(args, from)
		query += fmt.Sprintf(" AND date >= $%d::date", len(args))
	}
	if to != "" {
		args = append(args, to)
		query += fmt.Sprintf(" AND date <= $%d::date", len(args))
	}
	query += " ORDER BY date ASC, created_at ASC"

	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return entries, nil
}

// ReplaceDay deletes the day's rows and inserts the new set in one
// transaction, so readers see either the old or the new set.
func (r *PostgresLogRepository) ReplaceDay(ctx context.Context, userID domain.ID, date string, activityIDs []domain.ID) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Printf("[DB] rollback failed: %v", rbErr)
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM logs WHERE user_id = $1 AND date = $2::date`, userID, date); err != nil {
		return fmt.Errorf("failed to clear day: %w", err)
	}

	for _, id := range activityIDs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO logs (user_id, activity_id, date)
			VALUES ($1, $2, $3::date)
			ON CONFLICT (user_id, activity_id, date) DO NOTHING`, userID, id, date)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: %s", domain.ErrActivityNotFound, id)
			}
			return fmt.Errorf("failed to insert log: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit day: %w", err)
	}
	return nil
}
