package gormrepo

import (
	"context"
	"errors"

	domain "multisuministros-codes/internal/domain/setting"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct{ db *gorm.DB }

func NewSettingRepository(db *gorm.DB) *SettingRepository { return &SettingRepository{db: db} }

// "key" is reserved in MySQL; struct conditions let gorm quote it per dialect.
func (r *SettingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	var out domain.Setting
	err := r.db.WithContext(ctx).Where(&domain.Setting{Key: key}).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *SettingRepository) Upsert(ctx context.Context, s *domain.Setting) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(s).Error
}

func (r *SettingRepository) InsertIfMissing(ctx context.Context, s *domain.Setting) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(s).Error
}
