// README: User profile record mirrored from the identity provider.
package user

import (
	"errors"
	"time"

	"atlas/internal/types"
)

var ErrNotFound = errors.New("user not found")

// User is the locally stored profile for an authenticated account.
// AccountID is the identity-provider UID; ID is our own record key.
type User struct {
	ID        types.ID
	AccountID string
	Email     string
	Name      string
	ImageURL  string
	JoinedAt  time.Time
}
