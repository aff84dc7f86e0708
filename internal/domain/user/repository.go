package user

import (
	"context"

	"secdesk/internal/shared/authorization"
)

// Repository is the persistence port for users. Lookups return (nil, nil)
// when no user matches, so callers can distinguish absence from store errors.
type Repository interface {
	Create(ctx context.Context, u *User) error
	// CreateIfAbsent inserts the user unless the username already exists.
	// It reports whether a row was actually inserted (insert-or-ignore).
	CreateIfAbsent(ctx context.Context, u *User) (bool, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]*User, error)
	UpdateRole(ctx context.Context, username string, role authorization.UserRole) error
}
