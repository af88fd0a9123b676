package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the app-level settings shared by the API server and the
// importer. Database settings stay env-only in internal/infra/db.
type Config struct {
	Port string // API listen port (8080)

	CSVDir          string // directory the vendor exports land in
	ImportBatchSize int    // rows per commit during ingestion runs

	GoEnv string // dev/prod, switches log output format
}

// Load reads environment variables and applies defaults.
func Load() (Config, error) {
	batchSize, err := intOr("IMPORT_BATCH_SIZE", 50)
	if err != nil {
		return Config{}, err
	}
	if batchSize < 1 {
		return Config{}, fmt.Errorf("IMPORT_BATCH_SIZE must be >= 1")
	}

	cfg := Config{
		Port:            stringOr("PORT", "8080"),
		CSVDir:          stringOr("CSV_DIR", "csv_files"),
		ImportBatchSize: batchSize,
		GoEnv:           stringOr("GO_ENV", "dev"),
	}
	return cfg, nil
}

func stringOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intOr(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
