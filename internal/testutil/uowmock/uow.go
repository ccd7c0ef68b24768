package uowmock

import (
	"context"
	"errors"

	"multisuministros-codes/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Leave WithinTxFn nil to get errUnimplemented, or use Passthrough.
type UoW struct {
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough runs fn directly against repos, without rollback.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{WithinTxFn: func(_ context.Context, fn func(r uow.Repos) error) error {
		return fn(repos)
	}}
}

func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
