package settingmock

import (
	"context"

	domain "multisuministros-codes/internal/domain/setting"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetFn             func(ctx context.Context, key string) (*domain.Setting, error)
	UpsertFn          func(ctx context.Context, s *domain.Setting) error
	InsertIfMissingFn func(ctx context.Context, s *domain.Setting) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Get(ctx context.Context, key string) (*domain.Setting, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Upsert(ctx context.Context, s *domain.Setting) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, s)
	}
	return nil
}

func (m *Repo) InsertIfMissing(ctx context.Context, s *domain.Setting) error {
	if m.InsertIfMissingFn != nil {
		return m.InsertIfMissingFn(ctx, s)
	}
	return nil
}
