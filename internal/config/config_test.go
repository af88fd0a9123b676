package config_test

import (
	"testing"

	"app/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CSV_DIR", "")
	t.Setenv("IMPORT_BATCH_SIZE", "")
	t.Setenv("GO_ENV", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "csv_files", cfg.CSVDir)
	assert.Equal(t, 50, cfg.ImportBatchSize)
	assert.Equal(t, "dev", cfg.GoEnv)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CSV_DIR", "/srv/exports")
	t.Setenv("IMPORT_BATCH_SIZE", "100")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/srv/exports", cfg.CSVDir)
	assert.Equal(t, 100, cfg.ImportBatchSize)
}

func TestLoad_BadBatchSize(t *testing.T) {
	t.Setenv("IMPORT_BATCH_SIZE", "пятьдесят")
	_, err := config.Load()
	require.Error(t, err)

	t.Setenv("IMPORT_BATCH_SIZE", "0")
	_, err = config.Load()
	require.Error(t, err)
}
