package aiusage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles ai_usage persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Increment adds one successful generation to the user's counter for the
// current month, creating the row on first use.
func (s *Store) Increment(ctx context.Context, uid string) error {
	month := time.Now().UTC().Format(monthFormat)

	_, err := s.db.Exec(ctx, `
		INSERT INTO ai_usage (uid, month, generations)
		VALUES ($1, $2, 1)
		ON CONFLICT (uid, month) DO UPDATE
		SET generations = ai_usage.generations + 1
	`, uid, month)
	return err
}

// MonthlyCount returns how many generations uid has run this month.
// A missing row counts as zero.
func (s *Store) MonthlyCount(ctx context.Context, uid string) (int, error) {
	month := time.Now().UTC().Format(monthFormat)

	var count int
	err := s.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(generations), 0)
		FROM ai_usage
		WHERE uid = $1 AND month = $2
	`, uid, month).Scan(&count)
	return count, err
}
