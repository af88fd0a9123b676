package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"app/internal/config"
	"app/internal/csvdata"
	"app/internal/domain/model"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/logging"
	"app/internal/seed"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Default export file names as the vendor names them.
const (
	productsFile = "Справочник электрика.csv"
	pricesFile   = "цены электрика.csv"
	stocksFile   = "остатки электрика.csv"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: importer <products|prices|stocks|seed-warehouses> [-file NAME]")
	os.Exit(2)
}

func main() {
	// .env is optional; vars may come from the environment directly
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logging.New(cfg.GoEnv)

	if len(os.Args) < 2 {
		usage()
	}
	verb := os.Args[1]

	defaults := map[string]string{
		"products": productsFile,
		"prices":   pricesFile,
		"stocks":   stocksFile,
	}

	fs := flag.NewFlagSet(verb, flag.ExitOnError)
	file := fs.String("file", defaults[verb], "source CSV file name under CSV_DIR")
	fs.Parse(os.Args[2:])

	gormDB, err := connect(log)
	if err != nil {
		os.Exit(1)
	}

	batches := infraRepo.NewBatchManagerGorm(gormDB)
	warehouseRepo := infraRepo.NewWarehouseGormRepository(gormDB)
	importUC := usecase.NewImportUsecase(batches, warehouseRepo, cfg.ImportBatchSize, log)

	ctx := context.Background()

	switch verb {
	case "seed-warehouses":
		inserted, err := importUC.SeedWarehouses(ctx, seed.Warehouses)
		if err != nil {
			log.Error("seeding failed", "error", err)
			os.Exit(1)
		}
		log.Info("seeding complete", "inserted", inserted)

	case "products", "prices", "stocks":
		src := openSource(cfg.CSVDir, *file, log)
		var sum usecase.RunSummary
		switch verb {
		case "products":
			sum, err = importUC.ImportProducts(ctx, src)
		case "prices":
			sum, err = importUC.ImportPrices(ctx, src)
		case "stocks":
			sum, err = importUC.ImportStocks(ctx, src)
		}
		if err != nil {
			// prior batches stay committed; the summary reflects them
			log.Error("run aborted", "error", err,
				"total", sum.Total, "success", sum.Success,
				"skipped", sum.Skipped, "errors", sum.Errors)
			os.Exit(1)
		}

	default:
		usage()
	}
}

func connect(log *slog.Logger) (*gorm.DB, error) {
	gormDB, err := db.Connect()
	if err != nil {
		log.Error("db connect failed", "error", err)
		return nil, err
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Description{},
		&model.OnlineInfo{},
		&model.Dimensions{},
		&model.Barcode{},
		&model.PriceSet{},
		&model.Warehouse{},
		&model.StockLevel{},
	); err != nil {
		log.Error("migrate failed", "error", err)
		return nil, err
	}
	return gormDB, nil
}

// openSource opens the export file or exits with a diagnostic listing
// what is actually in CSV_DIR, so a misplaced file is obvious up front.
func openSource(dir, name string, log *slog.Logger) *csvdata.Reader {
	if name == "" {
		usage()
	}
	path := filepath.Join(dir, name)

	if _, err := os.Stat(path); err != nil {
		log.Error("source file not found", "path", path)
		if entries, readErr := os.ReadDir(dir); readErr == nil {
			for _, e := range entries {
				log.Info("available file", "name", e.Name())
			}
		} else {
			log.Error("csv dir unreadable", "dir", dir, "error", readErr)
		}
		os.Exit(1)
	}

	src, err := csvdata.Open(path, csvdata.DefaultDelimiter)
	if err != nil {
		log.Error("open source failed", "path", path, "error", err)
		os.Exit(1)
	}
	return src
}
