package usecase

import (
	"context"

	"app/internal/csvdata"
	repo "app/internal/repository"
)

// ImportPrices refreshes price tiers wholesale: every run overwrites
// the full mapped column set for each code it sees. A price row for a
// product the catalog does not know fails its foreign key and is
// counted as an error without stopping the run.
func (u *ImportUsecase) ImportPrices(ctx context.Context, src RowSource) (RunSummary, error) {
	return u.run(ctx, src, "prices", func(ctx context.Context, r repo.Repos, row map[string]string) (rowResult, error) {
		ps, ok := csvdata.MapPriceRow(row)
		if !ok {
			return rowSkip("missing product code"), nil
		}
		if err := r.Prices().Upsert(ctx, ps); err != nil {
			return rowResult{}, err
		}
		return rowResult{}, nil
	})
}
