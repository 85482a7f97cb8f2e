package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/trancendos/alervato/internal/config"
	"github.com/trancendos/alervato/internal/platform/postgres"
	"github.com/trancendos/alervato/internal/service"
	"github.com/trancendos/alervato/internal/service/auth"
	"github.com/trancendos/alervato/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core dependencies
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore        store.UserStore
	roleStore        store.RoleStore
	transactionStore store.TransactionStore
	costStore        store.CostStore
	offeringStore    store.OfferingStore

	// Service interfaces
	jwtService         auth.JWTService
	passwordVerifier   auth.PasswordVerifier
	authService        service.AuthService
	transactionService service.TransactionService
	costService        service.CostService
	offeringService    service.OfferingService
	analyticsService   service.AnalyticsService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the configuration, logger, and database connection
// that must be established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	// Stores
	app.userStore = postgres.NewUserStore(db, cfg.Auth.BcryptCost, logger)
	app.roleStore = postgres.NewRoleStore(db, logger)
	app.transactionStore = postgres.NewTransactionStore(db, logger)
	app.costStore = postgres.NewCostStore(db, logger)
	app.offeringStore = postgres.NewOfferingStore(db, logger)

	// Services
	app.authService, err = service.NewAuthService(
		app.userStore,
		app.roleStore,
		app.jwtService,
		app.passwordVerifier,
		db,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	app.transactionService = service.NewTransactionService(app.transactionStore, logger)
	app.costService = service.NewCostService(app.costStore, logger)
	app.offeringService = service.NewOfferingService(app.offeringStore, logger)
	app.analyticsService = service.NewAnalyticsService(app.transactionStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
