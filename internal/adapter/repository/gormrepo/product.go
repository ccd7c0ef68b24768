package gormrepo

import (
	"context"
	"errors"

	domain "multisuministros-codes/internal/domain/product"

	"gorm.io/gorm"
)

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateCode
	}
	return err
}

func (r *ProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Where("codigo = ?", code).Count(&n).Error
	return n > 0, err
}

func (r *ProductRepository) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	var out domain.Product
	err := r.db.WithContext(ctx).Where("codigo = ?", code).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}
