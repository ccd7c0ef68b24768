package gormrepo

import (
	"context"

	"multisuministros-codes/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{
			Requests:      &RequestRepository{db: tx},
			Products:      &ProductRepository{db: tx},
			Notifications: &NotificationRepository{db: tx},
			Users:         &UserRepository{db: tx},
		})
	})
}
