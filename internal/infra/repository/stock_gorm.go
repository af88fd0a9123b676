package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockGormRepository struct {
	db *gorm.DB
}

// DI
func NewStockGormRepository(db *gorm.DB) *StockGormRepository {
	return &StockGormRepository{db: db}
}

// Upsert on the (product_code, warehouse_id) natural key; concurrent
// runs touching the same pair degrade to last-write-wins.
func (r *StockGormRepository) Upsert(ctx context.Context, s model.StockLevel) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_code"}, {Name: "warehouse_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"quantity",
			"reserved",
			"updated_at",
		}),
	}).Create(&s).Error
}
