package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"mining-reports-service/internal/auth"
	"mining-reports-service/internal/config"
	"mining-reports-service/internal/db"
	httphandler "mining-reports-service/internal/http"
	"mining-reports-service/internal/http/middleware"
	"mining-reports-service/internal/logger"
	"mining-reports-service/internal/repository"
	"mining-reports-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	loc, err := cfg.Location()
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to load timezone")
	}

	primary, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect warehouse")
	}

	registry := buildRegistry(cfg, primary, appLogger)

	reportService := service.NewReportService(registry, loc, cfg.Reports, appLogger)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(reportService, appLogger)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting mining reports service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}

// buildRegistry connects every configured secondary mine-site warehouse.
// An unreachable site is skipped with a warning so one dead link never
// takes the whole portal down.
func buildRegistry(cfg *config.Config, primary *gorm.DB, log zerolog.Logger) *repository.Registry {
	ttl := time.Duration(cfg.Reports.CacheTTLMinutes) * time.Minute

	projectConns := make(map[string]*gorm.DB, len(cfg.Projects))
	for code, dsn := range cfg.Projects {
		conn, err := db.Open(cfg, dsn, log)
		if err != nil {
			log.Warn().Err(err).Str("project", code).Msg("skipping unreachable project warehouse")
			continue
		}
		projectConns[code] = conn
	}

	return repository.NewRegistry(primary, projectConns, ttl, log)
}
