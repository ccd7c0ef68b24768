package setting

import (
	"context"
	"errors"
	"strconv"

	"multisuministros-codes/internal/domain/errs"
	domain "multisuministros-codes/internal/domain/setting"
	"multisuministros-codes/internal/domain/user"
	"multisuministros-codes/internal/usecase/access"
	"multisuministros-codes/pkg/session"
)

type Tolerance struct {
	Value float64 `json:"value"`
}

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// Seed writes the default tolerance unless a value is already stored.
func (u *Usecase) Seed(ctx context.Context) error {
	return u.repo.InsertIfMissing(ctx, &domain.Setting{Key: domain.KeyPriceTolerance, Value: domain.DefaultPriceTolerance})
}

// GetTolerance falls back to the default when the row is missing or unparsable.
func (u *Usecase) GetTolerance(ctx context.Context, s session.Session) (*Tolerance, error) {
	if err := access.Require(s, user.RoleAdmin); err != nil {
		return nil, err
	}
	def, _ := strconv.ParseFloat(domain.DefaultPriceTolerance, 64)

	row, err := u.repo.Get(ctx, domain.KeyPriceTolerance)
	if errors.Is(err, domain.ErrNotFound) {
		return &Tolerance{Value: def}, nil
	}
	if err != nil {
		return nil, err
	}
	v, err := strconv.ParseFloat(row.Value, 64)
	if err != nil {
		return &Tolerance{Value: def}, nil
	}
	return &Tolerance{Value: v}, nil
}

func (u *Usecase) SetTolerance(ctx context.Context, s session.Session, v float64) (*Tolerance, error) {
	if err := access.Require(s, user.RoleAdmin); err != nil {
		return nil, err
	}
	if v < 0 || v > 1 {
		return nil, errs.Validation("tolerance must be between 0 and 1")
	}
	if err := u.repo.Upsert(ctx, &domain.Setting{
		Key:   domain.KeyPriceTolerance,
		Value: strconv.FormatFloat(v, 'f', -1, 64),
	}); err != nil {
		return nil, err
	}
	return &Tolerance{Value: v}, nil
}
