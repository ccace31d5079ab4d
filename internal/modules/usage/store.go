package usage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles plan_usage persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Consume atomically checks the monthly quota and deducts one generation.
// It resets the counter to MonthlyAllowance when last_reset_month is behind
// the current month. Returns ErrQuotaExhausted when 0 rows are updated
// (quota exhausted or user absent).
func (s *Store) Consume(ctx context.Context, uid string) error {
	now := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE plan_usage SET
			generations_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE generations_remaining - 1 END,
			last_reset_month = $1
		WHERE uid = $3 AND (last_reset_month < $1 OR generations_remaining > 0)
	`, now, MonthlyAllowance, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExhausted
	}
	return nil
}

// Refund returns one generation consumed in the current month, capped at the
// monthly allowance. A row from another month is left alone; its counter is
// rewritten on the next Consume anyway.
func (s *Store) Refund(ctx context.Context, uid string) error {
	_, err := s.db.Exec(ctx, `
		UPDATE plan_usage SET generations_remaining = generations_remaining + 1
		WHERE uid = $1 AND last_reset_month = $2 AND generations_remaining < $3
	`, uid, time.Now().Format("2006-01"), MonthlyAllowance)
	return err
}

// EnsureUser inserts a new plan_usage row for uid with the default allowance.
// If the row already exists the insert is silently skipped (ON CONFLICT DO NOTHING).
func (s *Store) EnsureUser(ctx context.Context, uid string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO plan_usage (uid, generations_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO NOTHING
	`, uid, MonthlyAllowance, time.Now().Format("2006-01"))
	return err
}
