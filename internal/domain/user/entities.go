package user

import (
	"fmt"

	"multisuministros-codes/internal/domain/errs"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleVendor Role = "vendedor"
)

// MaxVendors caps vendor accounts at creation time.
const MaxVendors = 25

var (
	ErrNotFound           = fmt.Errorf("user not found: %w", errs.ErrNotFound)
	ErrDuplicateUsername  = fmt.Errorf("username already taken: %w", errs.ErrConflict)
	ErrVendorLimit        = fmt.Errorf("vendor limit of %d reached: %w", MaxVendors, errs.ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("invalid password: %w", errs.ErrUnauthorized)
)

// Table: users
type User struct {
	ID           uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"column:username;size:64;not null;uniqueIndex:ux_users_username" json:"username"`
	PasswordHash string `gorm:"column:password_hash;size:255" json:"-"`
	Role         Role   `gorm:"column:role;size:16;index" json:"role"`
}

func (User) TableName() string { return "users" }
