package usecase

import (
	"context"

	"app/internal/csvdata"
	repo "app/internal/repository"
)

// ImportProducts runs the insert-if-absent protocol over a catalog
// file: existing codes are skipped untouched, new codes are inserted
// together with their owned children. Corrections happen out of band,
// so a second run over the same file changes nothing.
func (u *ImportUsecase) ImportProducts(ctx context.Context, src RowSource) (RunSummary, error) {
	return u.run(ctx, src, "products", func(ctx context.Context, r repo.Repos, row map[string]string) (rowResult, error) {
		bundle, ok := csvdata.MapProductRow(row)
		if !ok {
			return rowSkip("missing product code"), nil
		}

		exists, err := r.Products().ExistsByCode(ctx, bundle.Product.Code)
		if err != nil {
			return rowResult{}, err
		}
		if exists {
			return rowSkip("already present"), nil
		}

		p := bundle.Product
		p.Description = bundle.Description
		p.OnlineInfo = bundle.OnlineInfo
		p.Dimensions = bundle.Dimensions
		p.Barcodes = bundle.Barcodes
		if err := r.Products().Create(ctx, &p); err != nil {
			return rowResult{}, err
		}
		return rowResult{}, nil
	})
}
