package usermock

import (
	"context"

	domain "multisuministros-codes/internal/domain/user"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, u *domain.User) error
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	CountByRoleFn   func(ctx context.Context, role domain.Role) (int64, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	if m.CountByRoleFn != nil {
		return m.CountByRoleFn(ctx, role)
	}
	return 0, nil
}
