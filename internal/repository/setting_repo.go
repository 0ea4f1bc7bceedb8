package repository

import (
	"context"
	"sort"

	"go-pos-ws/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	FindAll(ctx context.Context) ([]model.Setting, error)
	UpsertAll(ctx context.Context, entries map[string]string) error
}

type settingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) SettingRepository {
	return &settingRepo{db}
}

func (r *settingRepo) FindAll(ctx context.Context) ([]model.Setting, error) {
	var settings []model.Setting
	err := r.db.WithContext(ctx).Find(&settings).Error
	return settings, err
}

// UpsertAll writes the whole batch in one transaction. Each key uses a
// single atomic INSERT ... ON CONFLICT (key) DO UPDATE against the unique
// index, never a check-then-insert: the naive pattern races under concurrent
// callers and produces duplicate rows. Keys are written in sorted order so
// two concurrent batches cannot take row locks in opposite orders.
func (r *settingRepo) UpsertAll(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, k := range keys {
			setting := model.Setting{Key: k, Value: entries[k]}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&setting).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
