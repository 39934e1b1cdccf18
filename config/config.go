package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Config armazena todas as configurações da API de estoque.
// Os valores vêm das variáveis de ambiente (tags env/envDefault).
type Config struct {
	// Geral
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Banco de Dados (PostgreSQL)
	DatabaseURL  string `env:"DATABASE_URL"`
	DBTimeoutSec int    `env:"DB_TIMEOUT_SEC" envDefault:"5"`
	AutoMigrate  bool   `env:"AUTO_MIGRATE" envDefault:"false"`

	// Cache (Redis)
	RedisAddr              string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	CacheTimeoutSec        int    `env:"CACHE_TIMEOUT_SEC" envDefault:"10"`
	CacheListingTTLSec     int    `env:"CACHE_LISTING_TTL_SEC" envDefault:"60"`
	CacheInvalidateOnWrite bool   `env:"CACHE_INVALIDATE_ON_WRITE" envDefault:"true"`

	// Segurança (JWT e credencial estática)
	JWTSecretKey         string `env:"JWT_SECRET_KEY"`
	JWTExpiryMin         int    `env:"JWT_EXPIRY_MIN" envDefault:"60"`
	AuthUsername         string `env:"AUTH_USERNAME" envDefault:"admin"`
	AuthPassword         string `env:"AUTH_PASSWORD"`
	AuthPasswordHash     string `env:"AUTH_PASSWORD_HASH"`
	AuthProtectAllWrites bool   `env:"AUTH_PROTECT_ALL_WRITES" envDefault:"false"`

	// Rate Limiting
	RateLimitMaxRequests int `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"100"`
	RateLimitPeriodMin   int `env:"RATE_LIMIT_PERIOD_MIN" envDefault:"1"`

	// Relatórios
	LowStockThreshold  int `env:"LOW_STOCK_THRESHOLD" envDefault:"10"`
	HighStockThreshold int `env:"HIGH_STOCK_THRESHOLD" envDefault:"100"`
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("erro ao ler variáveis de ambiente: %w", err)
	}
	return cfg, nil
}

// Merge sobrescreve cfg com os campos não-zero de overrides (e.g., flags da linha de comando).
func Merge(cfg *Config, overrides Config) error {
	if err := mergo.Merge(cfg, overrides, mergo.WithOverride); err != nil {
		return fmt.Errorf("erro ao mesclar configurações: %w", err)
	}
	return nil
}

// Validate verifica as configurações obrigatórias e a coerência entre campos.
func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL deve ser definida"))
	}
	if c.JWTSecretKey == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY deve ser definida"))
	}
	if c.AuthPassword == "" && c.AuthPasswordHash == "" {
		errs = append(errs, errors.New("AUTH_PASSWORD ou AUTH_PASSWORD_HASH deve ser definida"))
	}
	if c.LowStockThreshold > c.HighStockThreshold {
		errs = append(errs, fmt.Errorf("LOW_STOCK_THRESHOLD (%d) maior que HIGH_STOCK_THRESHOLD (%d)", c.LowStockThreshold, c.HighStockThreshold))
	}
	if c.CacheListingTTLSec <= 0 {
		errs = append(errs, errors.New("CACHE_LISTING_TTL_SEC deve ser positivo"))
	}
	return errors.Join(errs...)
}

// Helpers de duração

func (c *Config) DBTimeout() time.Duration       { return time.Duration(c.DBTimeoutSec) * time.Second }
func (c *Config) CacheTimeout() time.Duration    { return time.Duration(c.CacheTimeoutSec) * time.Second }
func (c *Config) ListingTTL() time.Duration      { return time.Duration(c.CacheListingTTLSec) * time.Second }
func (c *Config) TokenExpiry() time.Duration     { return time.Duration(c.JWTExpiryMin) * time.Minute }
func (c *Config) RateLimitPeriod() time.Duration { return time.Duration(c.RateLimitPeriodMin) * time.Minute }
