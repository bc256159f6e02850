// README: User store backed by PostgreSQL.
package user

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

func (s *Store) GetByAccountID(ctx context.Context, accountID string) (*User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, account_id, email, name, image_url, joined_at
		FROM users
		WHERE account_id = $1`, accountID,
	)

	var u User
	err := row.Scan(&u.ID, &u.AccountID, &u.Email, &u.Name, &u.ImageURL, &u.JoinedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) Create(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = newID()
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO users (id, account_id, email, name, image_url, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (account_id) DO NOTHING`,
		string(u.ID), u.AccountID, u.Email, u.Name, u.ImageURL, u.JoinedAt,
	)
	return err
}

func newID() types.ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return types.ID(hex.EncodeToString(b[:]))
}
