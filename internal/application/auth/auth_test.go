package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"secdesk/internal/domain/user"
	infraauth "secdesk/internal/infrastructure/auth"
	"secdesk/internal/infrastructure/persistence/models"
	"secdesk/internal/infrastructure/repository"
	"secdesk/internal/shared/authorization"
	"secdesk/internal/shared/errors"
	"secdesk/internal/shared/logger"
)

func setupUseCases(t *testing.T) (*RegisterUseCase, *LoginUseCase, user.Repository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}))

	log := logger.NewLogger()
	repo := repository.NewUserRepository(db, log)
	hasher := infraauth.NewBcryptPasswordHasher(bcrypt.MinCost)

	return NewRegisterUseCase(repo, hasher, log), NewLoginUseCase(repo, hasher, log), repo
}

func TestRegisterUseCase_Execute(t *testing.T) {
	register, _, repo := setupUseCases(t)
	ctx := context.Background()

	t.Run("successful registration defaults to user role", func(t *testing.T) {
		u, err := register.Execute(ctx, RegisterCommand{Username: "alice", Password: "Password1"})
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username())
		assert.Equal(t, authorization.RoleUser, u.Role())
		assert.NotEqual(t, "Password1", u.PasswordHash())

		stored, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, stored)
	})

	t.Run("explicit role is kept", func(t *testing.T) {
		u, err := register.Execute(ctx, RegisterCommand{Username: "root1", Password: "Password1", Role: authorization.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, authorization.RoleAdmin, u.Role())
	})

	t.Run("duplicate username is a conflict", func(t *testing.T) {
		_, err := register.Execute(ctx, RegisterCommand{Username: "alice", Password: "Password1"})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("short username rejected", func(t *testing.T) {
		_, err := register.Execute(ctx, RegisterCommand{Username: "ab", Password: "Password1"})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("username with symbols rejected", func(t *testing.T) {
		_, err := register.Execute(ctx, RegisterCommand{Username: "bad!name", Password: "Password1"})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("weak passwords rejected", func(t *testing.T) {
		for _, password := range []string{"Pass1", "password1", "PASSWORDX"} {
			_, err := register.Execute(ctx, RegisterCommand{Username: "newuser", Password: password})
			assert.True(t, errors.IsValidationError(err), "password %q should be rejected", password)
		}
	})
}

func TestLoginUseCase_Execute(t *testing.T) {
	register, login, _ := setupUseCases(t)
	ctx := context.Background()

	_, err := register.Execute(ctx, RegisterCommand{Username: "alice", Password: "Password1", Role: authorization.RoleAnalyst})
	require.NoError(t, err)

	t.Run("successful login returns identity without hash", func(t *testing.T) {
		identity, err := login.Execute(ctx, LoginCommand{Username: "alice", Password: "Password1"})
		require.NoError(t, err)
		assert.Equal(t, "alice", identity.Username)
		assert.Equal(t, authorization.RoleAnalyst, identity.Role)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := login.Execute(ctx, LoginCommand{Username: "ghost", Password: "Password1"})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := login.Execute(ctx, LoginCommand{Username: "alice", Password: "WrongPass1"})
		assert.True(t, errors.IsUnauthorizedError(err))
	})
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("alice"))
	assert.NoError(t, ValidateUsername("User123"))
	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername("has space"))
	assert.Error(t, ValidateUsername("semi;colon"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Password1"))
	assert.Error(t, ValidatePassword("short1A"))
	assert.Error(t, ValidatePassword("nodigitshere"))
	assert.Error(t, ValidatePassword("nouppercase1"))
}
