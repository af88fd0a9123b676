package usecase

import (
	"context"

	"app/internal/domain/model"
)

// SeedWarehouses inserts the fixed warehouse list, leaving rows whose
// name already exists alone. Stock ingestion depends on this having run.
func (u *ImportUsecase) SeedWarehouses(ctx context.Context, ws []model.Warehouse) (int64, error) {
	inserted, err := u.warehouses.CreateIgnoreExisting(ctx, ws)
	if err != nil {
		return 0, err
	}
	u.log.Info("warehouses seeded", "inserted", inserted, "given", len(ws))
	return inserted, nil
}
