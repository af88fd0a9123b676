package repository

import (
	"context"

	"app/internal/domain/model"
)

// PriceRepository refreshes price tiers wholesale: insert, or on a
// product_code conflict overwrite every mapped column.
type PriceRepository interface {
	Upsert(ctx context.Context, ps model.PriceSet) error
}
