package repository

import "context"

// Repos is the set of repositories bound to one row's unit of work.
type Repos interface {
	Products() ProductRepository
	Prices() PriceRepository
	Stocks() StockRepository
}

// Batch is one open transaction of an import run. Row executes fn in a
// nested scope: if fn fails, only that row's writes are rolled back and
// the rest of the batch survives.
type Batch interface {
	Row(fn func(r Repos) error) error
}

// BatchManager hides transaction begin/commit/rollback from the
// ingestion engine. WithinBatch commits when fn returns nil and rolls
// back otherwise.
type BatchManager interface {
	WithinBatch(ctx context.Context, fn func(b Batch) error) error
}
