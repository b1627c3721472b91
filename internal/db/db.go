package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"mining-reports-service/internal/config"
)

// New opens the primary warehouse connection. The warehouse is read-only
// for this service; no schema management happens here.
func New(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	return Open(cfg, cfg.DB.DSN, log)
}

// Open connects to one warehouse by DSN, applying the shared pool limits.
// Secondary project warehouses go through here as well.
func Open(cfg *config.Config, dsn string, log zerolog.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if cfg.Environment == "development" {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	database, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open warehouse: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}

	maxOpen := cfg.DB.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	maxIdle := cfg.DB.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = 5
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)

	lifetime := time.Hour
	if cfg.DB.ConnMaxLifetime != "" {
		parsed, err := time.ParseDuration(cfg.DB.ConnMaxLifetime)
		if err != nil {
			log.Warn().Str("value", cfg.DB.ConnMaxLifetime).Msg("invalid DB_CONN_MAX_LIFETIME, using 1h")
		} else {
			lifetime = parsed
		}
	}
	sqlDB.SetConnMaxLifetime(lifetime)

	return database, nil
}
