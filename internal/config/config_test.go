package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "chess")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, DriverMongo, cfg.StoreDriver)
	assert.Equal(t, ":8001", cfg.HTTPAddr)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, int64(1000), cfg.ListLimit)
	assert.False(t, cfg.SeedSampleData)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadRequiresMongoSettings(t *testing.T) {
	t.Setenv("STORE_DRIVER", DriverMongo)
	t.Setenv("MONGO_URL", "")
	t.Setenv("DB_NAME", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URL")
}

func TestLoadMemoryDriverNeedsNoMongo(t *testing.T) {
	t.Setenv("STORE_DRIVER", DriverMemory)
	t.Setenv("MONGO_URL", "")
	t.Setenv("DB_NAME", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
}

func TestLoadReadsDotEnvAndSplitsOrigins(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"STORE_DRIVER=memory\nCORS_ORIGINS=http://localhost:3000, https://kashoe.club\nAPI_PREFIX=v1/\n",
	), 0o600))
	// godotenv never overrides variables that are already set.
	t.Setenv("STORE_DRIVER", "")
	os.Unsetenv("STORE_DRIVER")
	t.Setenv("CORS_ORIGINS", "")
	os.Unsetenv("CORS_ORIGINS")
	t.Setenv("API_PREFIX", "")
	os.Unsetenv("API_PREFIX")

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, []string{"http://localhost:3000", "https://kashoe.club"}, cfg.CORSOrigins)
	assert.Equal(t, "/v1", cfg.APIPrefix)
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := &Config{StoreDriver: "redis", ListLimit: 10}
	assert.Error(t, cfg.Validate())
}
