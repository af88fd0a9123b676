package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type reposGorm struct {
	products *ProductGormRepository
	prices   *PriceGormRepository
	stocks   *StockGormRepository
}

func (r *reposGorm) Products() repo.ProductRepository { return r.products }
func (r *reposGorm) Prices() repo.PriceRepository     { return r.prices }
func (r *reposGorm) Stocks() repo.StockRepository     { return r.stocks }

type batchGorm struct {
	tx *gorm.DB
}

// Row wraps one row in a nested transaction (a savepoint on Postgres):
// the row's writes roll back alone, the batch keeps its other rows.
func (b *batchGorm) Row(fn func(r repo.Repos) error) error {
	return b.tx.Transaction(func(rowTx *gorm.DB) error {
		return fn(&reposGorm{
			products: NewProductGormRepository(rowTx),
			prices:   NewPriceGormRepository(rowTx),
			stocks:   NewStockGormRepository(rowTx),
		})
	})
}

type BatchManagerGorm struct {
	db *gorm.DB
}

func NewBatchManagerGorm(db *gorm.DB) *BatchManagerGorm {
	return &BatchManagerGorm{db: db}
}

// WithinBatch runs fn inside one transaction; commit on nil, rollback
// on error.
func (m *BatchManagerGorm) WithinBatch(ctx context.Context, fn func(b repo.Batch) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&batchGorm{tx: tx})
	})
}
