package coderequest

import "context"

type Repository interface {
	Create(ctx context.Context, r *CodeRequest) error
	GetByID(ctx context.Context, id uint64) (*CodeRequest, error)

	// Newest first.
	ListByStatus(ctx context.Context, status Status) ([]CodeRequest, error)
	ListBySubmitter(ctx context.Context, username string) ([]CodeRequest, error)

	// TransitionFromPending applies t only while the row is still pending
	// (UPDATE ... WHERE estado = 'Pendiente'); returns ErrInvalidTransition when
	// no row was updated.
	TransitionFromPending(ctx context.Context, id uint64, t Transition) error
}
