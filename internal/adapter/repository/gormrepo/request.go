package gormrepo

import (
	"context"
	"errors"

	domain "multisuministros-codes/internal/domain/coderequest"

	"gorm.io/gorm"
)

type RequestRepository struct{ db *gorm.DB }

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{db: db} }

func (r *RequestRepository) Create(ctx context.Context, req *domain.CodeRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *RequestRepository) GetByID(ctx context.Context, id uint64) (*domain.CodeRequest, error) {
	var out domain.CodeRequest
	err := r.db.WithContext(ctx).First(&out, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RequestRepository) ListByStatus(ctx context.Context, status domain.Status) ([]domain.CodeRequest, error) {
	var out []domain.CodeRequest
	err := r.db.WithContext(ctx).
		Where("estado = ?", string(status)).
		Order("creado_en DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *RequestRepository) ListBySubmitter(ctx context.Context, username string) ([]domain.CodeRequest, error) {
	var out []domain.CodeRequest
	err := r.db.WithContext(ctx).
		Where("vendedor = ?", username).
		Order("creado_en DESC, id DESC").
		Find(&out).Error
	return out, err
}

// TransitionFromPending is a compare-and-swap on estado: of two concurrent
// deciders only one sees RowsAffected == 1.
func (r *RequestRepository) TransitionFromPending(ctx context.Context, id uint64, t domain.Transition) error {
	res := r.db.WithContext(ctx).
		Model(&domain.CodeRequest{}).
		Where("id = ? AND estado = ?", id, string(domain.StatusPending)).
		Updates(map[string]any{
			"estado":          string(t.To),
			"aprobado_por":    t.By,
			"aprobado_en":     t.At,
			"codigo_asignado": t.AssignedCode,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.CodeRequest{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return domain.ErrInvalidTransition
}
