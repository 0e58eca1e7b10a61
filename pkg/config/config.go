package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "shoplist"

	AppEnvDev  = "dev"
	AppEnvTest = "test"
	AppEnvProd = "prod"

	StoreBackendMemory = "memory"
	StoreBackendGorm   = "gorm"
)

var validate = validator.New()

type Config struct {
	App     AppConfig
	Store   StoreConfig
	DB      DBConfig
	Redis   RedisConfig
	Latency LatencyConfig
	Client  ClientConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	if cfg.Store.Backend == StoreBackendGorm && strings.TrimSpace(cfg.DB.DSN) == "" {
		return nil, fmt.Errorf("SHOPLIST_DB_DSN is required for the gorm store backend")
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPLIST_APP_ENV" default:"dev" validate:"oneof=dev test prod"`
	Port         string `envconfig:"SHOPLIST_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SHOPLIST_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPLIST_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig selects the shopping-list persistence backend. The memory
// backend is the seeded mock store; gorm persists through pkg/db.
type StoreConfig struct {
	Backend string `envconfig:"SHOPLIST_STORE_BACKEND" default:"memory" validate:"oneof=memory gorm"`
}

type DBConfig struct {
	Driver string `envconfig:"SHOPLIST_DB_DRIVER" default:"sqlite" validate:"oneof=sqlite postgres"`
	DSN    string `envconfig:"SHOPLIST_DB_DSN"`

	MaxOpenConns    int           `envconfig:"SHOPLIST_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SHOPLIST_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SHOPLIST_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SHOPLIST_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	AutoMigrate bool `envconfig:"SHOPLIST_DB_AUTO_MIGRATE" default:"false"`
}

type RedisConfig struct {
	// Empty URL disables the Redis-backed idempotency guard.
	URL          string        `envconfig:"SHOPLIST_REDIS_URL"`
	PoolSize     int           `envconfig:"SHOPLIST_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHOPLIST_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHOPLIST_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOPLIST_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOPLIST_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

// LatencyConfig controls the simulated network latency on the REST surface,
// used to exercise client loading states.
type LatencyConfig struct {
	Enabled    bool          `envconfig:"SHOPLIST_LATENCY_ENABLED" default:"true"`
	ReadDelay  time.Duration `envconfig:"SHOPLIST_LATENCY_READ_DELAY" default:"200ms"`
	WriteDelay time.Duration `envconfig:"SHOPLIST_LATENCY_WRITE_DELAY" default:"250ms"`
}

// Read returns the delay applied to single-record reads and deletes.
func (l LatencyConfig) Read() time.Duration {
	if !l.Enabled {
		return 0
	}
	return l.ReadDelay
}

// Write returns the delay applied to collection reads, creates and updates.
func (l LatencyConfig) Write() time.Duration {
	if !l.Enabled {
		return 0
	}
	return l.WriteDelay
}

type ClientConfig struct {
	BaseURL string `envconfig:"SHOPLIST_CLIENT_BASE_URL" default:"http://localhost:8080"`
}
