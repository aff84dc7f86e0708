// Package auth contains the registration and login use cases. The service
// is stateless: session handling belongs to the presentation layer.
package auth

import (
	"context"
	"fmt"

	"secdesk/internal/domain/user"
	infraauth "secdesk/internal/infrastructure/auth"
	"secdesk/internal/shared/authorization"
	"secdesk/internal/shared/errors"
	"secdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Username string
	Password string
	Role     authorization.UserRole
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   infraauth.PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher infraauth.PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*user.User, error) {
	if err := ValidateUsername(cmd.Username); err != nil {
		return nil, err
	}
	if err := ValidatePassword(cmd.Password); err != nil {
		return nil, err
	}

	role := cmd.Role
	if role == "" {
		role = authorization.RoleUser
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err)
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("username already exists", cmd.Username)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process credentials")
	}

	newUser, err := user.NewUser(cmd.Username, hash, role)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		// Two registrations can race past the existence check; the store's
		// unique constraint settles it.
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username already exists", cmd.Username)
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}

	uc.logger.Infow("user registered", "username", newUser.Username(), "role", newUser.Role().String())

	return newUser, nil
}
