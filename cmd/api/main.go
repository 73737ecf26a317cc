package main

import (
	"fmt"
	"os"

	"github.com/express22chief-pixel/money-planner-sub000/internal/config"
	"github.com/express22chief-pixel/money-planner-sub000/internal/database"
	"github.com/express22chief-pixel/money-planner-sub000/internal/logger"
	"github.com/express22chief-pixel/money-planner-sub000/internal/router"
	"github.com/express22chief-pixel/money-planner-sub000/internal/services"
	"github.com/express22chief-pixel/money-planner-sub000/internal/validator"

	"github.com/gin-gonic/gin"
)

// @title           Money Planner API
// @version         1.0
// @description     Household budgeting ledger with credit card settlement, recurring obligations, monthly balances and long-range asset projection.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	log := logger.Get()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		if cfg.JWTSecret == "fallback-secret-key-for-dev-only" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}
	if cfg.OwnerPassphraseHash == "" {
		log.Warn("OWNER_PASSPHRASE_HASH is not set; token requests will be rejected")
	}

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	clock := services.SystemClock{Location: cfg.Location}
	svc := router.NewServices(dbManager.DB(), cfg, clock)

	// Bring the current month's recurring entries up to date on startup.
	if result, err := svc.Recurring.Generate(); err != nil {
		log.Warnw("recurring generation failed", "error", err)
	} else {
		log.Infow("recurring generation", "month", result.Month, "added", len(result.Added), "settled", len(result.Settled))
	}

	r := router.New(svc, router.Options{
		TokenTTL:        cfg.JWTExpirationDur,
		SchedulerAPIKey: cfg.SchedulerAPIKey,
		RequestLogging:  true,
		Swagger:         !cfg.IsProduction(),
	})

	log.Infof("Starting money planner server on port %s (timezone %s)", cfg.Port, cfg.Location)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return r.Run(":" + cfg.Port)
}
