package requestmock

import (
	"context"

	domain "multisuministros-codes/internal/domain/coderequest"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups return context.Canceled so a missing stub fails loudly.
type Repo struct {
	CreateFn                func(ctx context.Context, r *domain.CodeRequest) error
	GetByIDFn               func(ctx context.Context, id uint64) (*domain.CodeRequest, error)
	ListByStatusFn          func(ctx context.Context, status domain.Status) ([]domain.CodeRequest, error)
	ListBySubmitterFn       func(ctx context.Context, username string) ([]domain.CodeRequest, error)
	TransitionFromPendingFn func(ctx context.Context, id uint64, t domain.Transition) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, r *domain.CodeRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.CodeRequest, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.CodeRequest, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, context.Canceled
}

func (m *Repo) ListBySubmitter(ctx context.Context, username string) ([]domain.CodeRequest, error) {
	if m.ListBySubmitterFn != nil {
		return m.ListBySubmitterFn(ctx, username)
	}
	return nil, context.Canceled
}

func (m *Repo) TransitionFromPending(ctx context.Context, id uint64, t domain.Transition) error {
	if m.TransitionFromPendingFn != nil {
		return m.TransitionFromPendingFn(ctx, id, t)
	}
	return nil
}
