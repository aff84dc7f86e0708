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

type LoginCommand struct {
	Username string
	Password string
}

// Identity is what a successful login returns. It never carries the
// credential hash.
type Identity struct {
	Username string
	Role     authorization.UserRole
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   infraauth.PasswordHasher
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher infraauth.PasswordHasher, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*Identity, error) {
	existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("username not found")
	}

	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	uc.logger.Infow("user logged in", "username", existing.Username())

	return &Identity{
		Username: existing.Username(),
		Role:     existing.Role(),
	}, nil
}
