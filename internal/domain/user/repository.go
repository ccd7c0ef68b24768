package user

import "context"

type Repository interface {
	// Create fails with ErrDuplicateUsername when the username is taken.
	Create(ctx context.Context, u *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	CountByRole(ctx context.Context, role Role) (int64, error)
}
