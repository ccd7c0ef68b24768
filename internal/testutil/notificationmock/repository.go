package notificationmock

import (
	"context"

	domain "multisuministros-codes/internal/domain/notification"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, n *domain.Notification) error
	ListByRecipientFn func(ctx context.Context, username string) ([]domain.Notification, error)
	MarkAllReadFn     func(ctx context.Context, username string) (int64, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}

func (m *Repo) ListByRecipient(ctx context.Context, username string) ([]domain.Notification, error) {
	if m.ListByRecipientFn != nil {
		return m.ListByRecipientFn(ctx, username)
	}
	return nil, nil
}

func (m *Repo) MarkAllRead(ctx context.Context, username string) (int64, error) {
	if m.MarkAllReadFn != nil {
		return m.MarkAllReadFn(ctx, username)
	}
	return 0, nil
}
