// README: User service; get-or-create bootstrap on first authenticated visit.
package user

import (
	"context"
	"errors"
	"time"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Ensure returns the stored profile for accountID, creating it on first
// sight with the supplied profile data. Creation races resolve via the
// store's ON CONFLICT clause followed by a re-read.
func (s *Service) Ensure(ctx context.Context, accountID, email, name, imageURL string) (*User, error) {
	u, err := s.store.GetByAccountID(ctx, accountID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	nu := &User{
		AccountID: accountID,
		Email:     email,
		Name:      name,
		ImageURL:  imageURL,
		JoinedAt:  time.Now().UTC(),
	}
	if err := s.store.Create(ctx, nu); err != nil {
		return nil, err
	}
	return s.store.GetByAccountID(ctx, accountID)
}

// Get returns the stored profile for accountID.
func (s *Service) Get(ctx context.Context, accountID string) (*User, error) {
	return s.store.GetByAccountID(ctx, accountID)
}
