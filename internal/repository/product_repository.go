package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ProductRepository persists the catalog root and its owned children.
// Create inserts the product together with whatever children are set on
// the struct, in the caller's unit of work.
type ProductRepository interface {
	FindByCode(ctx context.Context, code string) (model.Product, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, p *model.Product) error
}
