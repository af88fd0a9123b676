package usecase

import (
	"context"
	"fmt"

	"app/internal/csvdata"
	repo "app/internal/repository"
)

// ImportStocks upserts per-warehouse quantities. The warehouse set is
// not known until the header row: the resolver loads the whole table
// once and matches raw columns against warehouse names; columns that
// match nothing are ignored.
func (u *ImportUsecase) ImportStocks(ctx context.Context, src RowSource) (RunSummary, error) {
	byName, err := u.loadWarehouses(ctx)
	if err != nil {
		src.Close()
		return RunSummary{}, fmt.Errorf("load warehouses: %w", err)
	}
	u.log.Info("warehouses resolved", "count", len(byName))

	return u.run(ctx, src, "stocks", func(ctx context.Context, r repo.Repos, row map[string]string) (rowResult, error) {
		_, levels, ok := csvdata.MapStockRow(row, byName)
		if !ok {
			return rowSkip("missing product code"), nil
		}
		if len(levels) == 0 {
			return rowSkip("no warehouse columns matched"), nil
		}
		for _, s := range levels {
			if err := r.Stocks().Upsert(ctx, s); err != nil {
				return rowResult{}, err
			}
		}
		return rowResult{}, nil
	})
}

// loadWarehouses builds the name→id map held for the run's duration.
func (u *ImportUsecase) loadWarehouses(ctx context.Context) (map[string]int64, error) {
	ws, err := u.warehouses.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]int64, len(ws))
	for _, w := range ws {
		byName[w.Name] = w.ID
	}
	return byName, nil
}
