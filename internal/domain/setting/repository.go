package setting

import "context"

type Repository interface {
	Get(ctx context.Context, key string) (*Setting, error)
	// Upsert inserts or replaces the value for s.Key.
	Upsert(ctx context.Context, s *Setting) error
	// InsertIfMissing keeps an existing value untouched.
	InsertIfMissing(ctx context.Context, s *Setting) error
}
