package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/trancendos/alervato/internal/api"
	apiMiddleware "github.com/trancendos/alervato/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.authService, app.logger)
	transactionHandler := api.NewTransactionHandler(app.transactionService, app.logger)
	costHandler := api.NewCostHandler(app.costService, app.logger)
	offeringHandler := api.NewOfferingHandler(app.offeringService, app.logger)
	analyticsHandler := api.NewAnalyticsHandler(app.analyticsService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/logout", authHandler.Logout)

			// Transaction endpoints
			r.Get("/transactions", transactionHandler.List)
			r.Post("/transactions", transactionHandler.Create)
			r.Get("/transactions/{id}", transactionHandler.Get)
			r.Put("/transactions/{id}", transactionHandler.Update)
			r.Delete("/transactions/{id}", transactionHandler.Delete)

			// Cost approval workflow endpoints
			r.Get("/costs", costHandler.List)
			r.Post("/costs", costHandler.Create)
			r.Post("/costs/{id}/approve", costHandler.Approve)
			r.Post("/costs/{id}/reject", costHandler.Reject)

			// Customer service offering endpoints
			r.Get("/customer-services", offeringHandler.List)
			r.Post("/customer-services", offeringHandler.Create)

			// Analytics endpoints
			r.Get("/analytics/overview", analyticsHandler.Overview)
			r.Get("/analytics/spending-patterns", analyticsHandler.SpendingPatterns)
			r.Get("/analytics/category-analysis", analyticsHandler.CategoryAnalysis)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
