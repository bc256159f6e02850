// README: Trip store backed by PostgreSQL.
package trip

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"atlas/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Create inserts a new record under a store-generated identifier and
// returns it. Records are immutable once written.
func (s *Store) Create(ctx context.Context, rec *Record) (types.ID, error) {
	id := newID()
	_, err := s.db.Exec(ctx, `
		INSERT INTO trips (id, user_id, trip_detail, image_urls, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		string(id),
		rec.UserID,
		rec.TripDetail,
		rec.ImageURLs,
		rec.CreatedAt,
	)
	if err != nil {
		return "", err
	}
	rec.ID = id
	return id, nil
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Record, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, trip_detail, image_urls, created_at
		FROM trips
		WHERE id = $1`, string(id),
	)

	var rec Record
	err := row.Scan(&rec.ID, &rec.UserID, &rec.TripDetail, &rec.ImageURLs, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if rec.ImageURLs == nil {
		rec.ImageURLs = []string{}
	}
	return &rec, nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]*Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, trip_detail, image_urls, created_at
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.TripDetail, &rec.ImageURLs, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if rec.ImageURLs == nil {
			rec.ImageURLs = []string{}
		}
		recs = append(recs, &rec)
	}
	return recs, rows.Err()
}

func newID() types.ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return types.ID(hex.EncodeToString(b[:]))
}
