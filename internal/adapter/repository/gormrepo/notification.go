package gormrepo

import (
	"context"

	domain "multisuministros-codes/internal/domain/notification"

	"gorm.io/gorm"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, username string) ([]domain.Notification, error) {
	var out []domain.Notification
	err := r.db.WithContext(ctx).
		Where("usuario = ?", username).
		Order("creado_en DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, username string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("usuario = ? AND leido = ?", username, false).
		Update("leido", true)
	return res.RowsAffected, res.Error
}
