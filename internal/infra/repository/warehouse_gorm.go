package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WarehouseGormRepository struct {
	db *gorm.DB
}

// DI
func NewWarehouseGormRepository(db *gorm.DB) *WarehouseGormRepository {
	return &WarehouseGormRepository{db: db}
}

func (r *WarehouseGormRepository) List(ctx context.Context) ([]model.Warehouse, error) {
	var ws []model.Warehouse
	if err := r.db.WithContext(ctx).Order("id asc").Find(&ws).Error; err != nil {
		return nil, err
	}
	return ws, nil
}

// CreateIgnoreExisting seeds warehouses; rows whose name already exists
// are left untouched. Returns the number actually inserted.
func (r *WarehouseGormRepository) CreateIgnoreExisting(ctx context.Context, ws []model.Warehouse) (int64, error) {
	if len(ws) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&ws)
	return res.RowsAffected, res.Error
}
