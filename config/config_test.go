package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estoque/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/estoque?sslmode=disable")
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("AUTH_PASSWORD", "senha")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "admin", cfg.AuthUsername)
	assert.Equal(t, 60*time.Second, cfg.ListingTTL())
	assert.Equal(t, 60*time.Minute, cfg.TokenExpiry())
	assert.Equal(t, 5*time.Second, cfg.DBTimeout())
	assert.Equal(t, 10, cfg.LowStockThreshold)
	assert.Equal(t, 100, cfg.HighStockThreshold)
	assert.True(t, cfg.CacheInvalidateOnWrite)
	assert.False(t, cfg.AuthProtectAllWrites)
}

func TestLoadConfig_InvalidNumber(t *testing.T) {
	t.Setenv("DB_TIMEOUT_SEC", "cinco")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestValidate_MissingSecrets(t *testing.T) {
	cfg := &config.Config{LowStockThreshold: 10, HighStockThreshold: 100, CacheListingTTLSec: 60}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
	assert.Contains(t, err.Error(), "AUTH_PASSWORD")
}

func TestValidate_InvertedThresholds(t *testing.T) {
	cfg := &config.Config{
		DatabaseURL:        "postgres://x",
		JWTSecretKey:       "k",
		AuthPassword:       "p",
		LowStockThreshold:  200,
		HighStockThreshold: 100,
		CacheListingTTLSec: 60,
	}

	assert.ErrorContains(t, cfg.Validate(), "LOW_STOCK_THRESHOLD")
}

func TestMerge_OverridesOnlyNonZero(t *testing.T) {
	cfg := &config.Config{Port: "8080", LogLevel: "info", RedisAddr: "localhost:6379"}

	require.NoError(t, config.Merge(cfg, config.Config{Port: "9090", LogLevel: "debug"}))

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}
