package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	repo "app/internal/repository"

	"github.com/google/uuid"
)

// RowSource yields raw CSV rows keyed by header column name. Next
// returns io.EOF when the file is exhausted.
type RowSource interface {
	Next() (map[string]string, error)
	Close() error
}

// RunSummary is the end-of-run accounting every import reports.
type RunSummary struct {
	RunID   string
	Total   int
	Success int
	Skipped int
	Errors  int
}

// rowResult distinguishes a skip from a success; failures travel as
// plain errors next to it.
type rowResult struct {
	skipped bool
	reason  string
}

func rowSkip(reason string) rowResult {
	return rowResult{skipped: true, reason: reason}
}

type processFunc func(ctx context.Context, r repo.Repos, row map[string]string) (rowResult, error)

// ImportUsecase is the ingestion engine: it drives a row source through
// batched units of work with per-row failure isolation.
type ImportUsecase struct {
	batches    repo.BatchManager
	warehouses repo.WarehouseRepository
	batchSize  int
	log        *slog.Logger
}

// DI
func NewImportUsecase(
	batches repo.BatchManager,
	warehouses repo.WarehouseRepository,
	batchSize int,
	log *slog.Logger,
) *ImportUsecase {
	if batchSize < 1 {
		batchSize = 50
	}
	if log == nil {
		log = slog.Default()
	}
	return &ImportUsecase{
		batches:    batches,
		warehouses: warehouses,
		batchSize:  batchSize,
		log:        log,
	}
}

// run processes rows strictly in file order, one batch transaction per
// window of batchSize rows, one savepoint per row. Row failures are
// counted and the run continues; a batch that cannot commit means the
// store is gone, which aborts the run with the counts so far.
func (u *ImportUsecase) run(ctx context.Context, src RowSource, kind string, process processFunc) (RunSummary, error) {
	sum := RunSummary{RunID: uuid.NewString()}
	log := u.log.With("run_id", sum.RunID, "import", kind)
	log.Info("import started", "batch_size", u.batchSize)
	defer src.Close()

	for {
		window, readErr := readWindow(src, u.batchSize)

		if len(window) > 0 {
			var committed int
			batchErr := u.batches.WithinBatch(ctx, func(b repo.Batch) error {
				for _, row := range window {
					sum.Total++
					var res rowResult
					err := b.Row(func(r repo.Repos) error {
						var inner error
						res, inner = process(ctx, r, row)
						return inner
					})
					if err != nil {
						sum.Errors++
						log.Warn("row failed", "row", sum.Total, "error", err)
						continue
					}
					if res.skipped {
						sum.Skipped++
						log.Debug("row skipped", "row", sum.Total, "reason", res.reason)
						continue
					}
					committed++
				}
				return nil
			})
			if batchErr != nil {
				// The whole batch rolled back; nothing in it persisted.
				sum.Errors += committed
				log.Error("batch aborted, stopping run",
					"error", batchErr,
					"total", sum.Total, "success", sum.Success,
					"skipped", sum.Skipped, "errors", sum.Errors)
				return sum, fmt.Errorf("import %s: %w", kind, batchErr)
			}
			sum.Success += committed
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			log.Error("row source failed, stopping run",
				"error", readErr,
				"total", sum.Total, "success", sum.Success,
				"skipped", sum.Skipped, "errors", sum.Errors)
			return sum, fmt.Errorf("read %s rows: %w", kind, readErr)
		}
	}

	log.Info("import finished",
		"total", sum.Total, "success", sum.Success,
		"skipped", sum.Skipped, "errors", sum.Errors)
	return sum, nil
}

// readWindow pulls up to n rows; a non-nil error comes back together
// with the rows read before it.
func readWindow(src RowSource, n int) ([]map[string]string, error) {
	rows := make([]map[string]string, 0, n)
	for len(rows) < n {
		row, err := src.Next()
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
