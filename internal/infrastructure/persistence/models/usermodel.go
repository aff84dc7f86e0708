// Package models contains the gorm persistence models. These are the
// anti-corruption layer between the domain entities and the row store; no
// cross-table foreign keys are declared, matching the advisory-only
// referential integrity of the schema.
package models

// UserModel maps the users table. The username is the primary key; there is
// no surrogate id and rows are never physically deleted.
type UserModel struct {
	Username     string `gorm:"primaryKey;size:100"`
	PasswordHash string `gorm:"not null;size:255"`
	Role         string `gorm:"not null;default:user;size:20"`
}

func (UserModel) TableName() string {
	return "users"
}
