package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PriceGormRepository struct {
	db *gorm.DB
}

// DI
func NewPriceGormRepository(db *gorm.DB) *PriceGormRepository {
	return &PriceGormRepository{db: db}
}

// Upsert is atomic at the store: INSERT ... ON CONFLICT (product_code)
// DO UPDATE, overwriting every mapped column. Last write wins.
func (r *PriceGormRepository) Upsert(ctx context.Context, ps model.PriceSet) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"quantity",
			"max_purchase",
			"opt_card",
			"opt_card_plus",
			"opt",
			"retail",
			"gold",
			"platinum",
			"updated_at",
		}),
	}).Create(&ps).Error
}
