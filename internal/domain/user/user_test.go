package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secdesk/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		username string
		hash     string
		role     authorization.UserRole
		wantErr  bool
	}{
		{"valid user", "alice", "$2a$12$hash", authorization.RoleUser, false},
		{"valid admin", "admin", "$2a$12$hash", authorization.RoleAdmin, false},
		{"empty username", "", "$2a$12$hash", authorization.RoleUser, true},
		{"whitespace username", "   ", "$2a$12$hash", authorization.RoleUser, true},
		{"missing hash", "alice", "", authorization.RoleUser, true},
		{"unknown role", "alice", "$2a$12$hash", authorization.UserRole("root"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.username, tt.hash, tt.role)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.role, u.Role())
		})
	}
}

func TestUser_ChangeRole(t *testing.T) {
	u, err := NewUser("alice", "$2a$12$hash", authorization.RoleUser)
	require.NoError(t, err)

	require.NoError(t, u.ChangeRole(authorization.RoleAnalyst))
	assert.Equal(t, authorization.RoleAnalyst, u.Role())

	err = u.ChangeRole(authorization.UserRole("superuser"))
	assert.Error(t, err)
	assert.Equal(t, authorization.RoleAnalyst, u.Role())
}
