package productmock

import (
	"context"

	domain "multisuministros-codes/internal/domain/product"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, p *domain.Product) error
	ExistsByCodeFn func(ctx context.Context, code string) (bool, error)
	GetByCodeFn    func(ctx context.Context, code string) (*domain.Product, error)
	ListAllFn      func(ctx context.Context) ([]domain.Product, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, p *domain.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	if m.ExistsByCodeFn != nil {
		return m.ExistsByCodeFn(ctx, code)
	}
	return false, nil
}

func (m *Repo) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	return nil, context.Canceled
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Product, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
