// Package repository implements the domain persistence ports over gorm.
// Every statement goes through gorm's parameter binding; no SQL is ever
// assembled from user input.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"secdesk/internal/domain/user"
	"secdesk/internal/infrastructure/persistence/models"
	"secdesk/internal/shared/authorization"
	"secdesk/internal/shared/logger"
)

type UserRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{db: db, logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := userToModel(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "username", u.Username(), "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	r.logger.Infow("user created", "username", u.Username())
	return nil
}

// CreateIfAbsent inserts the user with insert-or-ignore semantics keyed on
// the username primary key. An existing row is left untouched.
func (r *UserRepository) CreateIfAbsent(ctx context.Context, u *user.User) (bool, error) {
	model := userToModel(u)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model)
	if result.Error != nil {
		r.logger.Errorw("failed to insert user", "username", u.Username(), "error", result.Error)
		return false, fmt.Errorf("failed to insert user: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user", "username", username, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return userToEntity(&model), nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check user existence", "username", username, "error", err)
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var userModels []*models.UserModel
	if err := r.db.WithContext(ctx).Order("username").Find(&userModels).Error; err != nil {
		r.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		users = append(users, userToEntity(model))
	}
	return users, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, username string, role authorization.UserRole) error {
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("username = ?", username).
		Update("role", role.String())
	if result.Error != nil {
		r.logger.Errorw("failed to update user role", "username", username, "error", result.Error)
		return fmt.Errorf("failed to update role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found")
	}
	r.logger.Infow("user role updated", "username", username, "role", role.String())
	return nil
}

func userToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}
}

func userToEntity(m *models.UserModel) *user.User {
	return user.Reconstruct(m.Username, m.PasswordHash, authorization.ParseUserRole(m.Role))
}
