// Package user holds the user entity. A user is identified by a unique
// username; the stored credential is a one-way digest, never the plaintext.
package user

import (
	"strings"

	"secdesk/internal/shared/authorization"
	"secdesk/internal/shared/errors"
)

type User struct {
	username     string
	passwordHash string
	role         authorization.UserRole
}

// NewUser creates a user from an already-hashed credential.
func NewUser(username, passwordHash string, role authorization.UserRole) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.NewValidationError("username is required")
	}
	if passwordHash == "" {
		return nil, errors.NewValidationError("password hash is required")
	}
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role", role.String())
	}
	return &User{
		username:     username,
		passwordHash: passwordHash,
		role:         role,
	}, nil
}

// Reconstruct rebuilds a user from persistence without re-validating.
func Reconstruct(username, passwordHash string, role authorization.UserRole) *User {
	return &User{
		username:     username,
		passwordHash: passwordHash,
		role:         role,
	}
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return errors.NewValidationError("invalid role", role.String())
	}
	u.role = role
	return nil
}
