package repository

import (
	"context"

	"app/internal/domain/model"
)

// StockRepository upserts on the (product_code, warehouse_id) natural key.
type StockRepository interface {
	Upsert(ctx context.Context, s model.StockLevel) error
}
