package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_GET_ENV", "")
	assert.Equal(t, "default", getEnv("TEST_GET_ENV", "default"))

	t.Setenv("TEST_GET_ENV", "value")
	assert.Equal(t, "value", getEnv("TEST_GET_ENV", "default"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_GET_ENV_INT", "100")
	assert.Equal(t, 100, getEnvAsInt("TEST_GET_ENV_INT", 42))

	t.Setenv("TEST_GET_ENV_INT", "not-an-int")
	assert.Equal(t, 42, getEnvAsInt("TEST_GET_ENV_INT", 42))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_GET_ENV_BOOL", "true")
	assert.True(t, getEnvAsBool("TEST_GET_ENV_BOOL", false))

	t.Setenv("TEST_GET_ENV_BOOL", "maybe")
	assert.False(t, getEnvAsBool("TEST_GET_ENV_BOOL", false))
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATASET_PATH", "MODEL_PATH", "SYNTH_SEED", "STORAGE_BACKEND", "CURRENCY_SYMBOL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "data/salaries.csv", cfg.Data.DatasetPath)
	assert.Equal(t, "model.json", cfg.Data.ModelPath)
	assert.Equal(t, uint64(42), cfg.Data.SynthSeed)
	assert.Equal(t, StorageLocal, cfg.Storage.Backend)
	assert.Equal(t, "₹", cfg.Display.CurrencySymbol)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SYNTH_SEED", "7")
	t.Setenv("STORAGE_BACKEND", StorageMinio)
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := Load()

	assert.Equal(t, uint64(7), cfg.Data.SynthSeed)
	assert.Equal(t, StorageMinio, cfg.Storage.Backend)
	assert.True(t, cfg.Minio.UseSSL)
}
