package product

import "context"

type Repository interface {
	// Create fails with ErrDuplicateCode when the code is taken.
	Create(ctx context.Context, p *Product) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	GetByCode(ctx context.Context, code string) (*Product, error)

	// ListAll returns the catalog in insertion order; this is the corpus order
	// the ranker uses to break ties.
	ListAll(ctx context.Context) ([]Product, error)
}
