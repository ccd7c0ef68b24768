package uow

import (
	"context"

	"multisuministros-codes/internal/domain/coderequest"
	"multisuministros-codes/internal/domain/notification"
	"multisuministros-codes/internal/domain/product"
	"multisuministros-codes/internal/domain/user"
)

// Repos are bound to the same transaction.
type Repos struct {
	Requests      coderequest.Repository
	Products      product.Repository
	Notifications notification.Repository
	Users         user.Repository
}

type UnitOfWork interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
