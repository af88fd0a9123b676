package repository

import (
	"context"

	"app/internal/domain/model"
)

// WarehouseRepository backs the resolver (List, once per run) and the
// one-off seeding step (insert-if-absent on the unique name).
type WarehouseRepository interface {
	List(ctx context.Context) ([]model.Warehouse, error)
	CreateIgnoreExisting(ctx context.Context, ws []model.Warehouse) (int64, error)
}
