package api

import (
	"log/slog"
	"net/http"

	"github.com/trancendos/alervato/internal/service"
)

// AnalyticsHandler handles analytics HTTP requests.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	logger           *slog.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger.With(slog.String("component", "analytics_handler")),
	}
}

// Overview handles GET /analytics/overview requests. The optional days
// query parameter sets the trailing window; the service applies the default
// when it is absent or invalid.
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	days := queryInt(r, "days", 0)

	overview, err := h.analyticsService.Overview(r.Context(), userID, days)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, overview)
}

// SpendingPatterns handles GET /analytics/spending-patterns requests.
func (h *AnalyticsHandler) SpendingPatterns(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	days := queryInt(r, "days", 0)

	patterns, err := h.analyticsService.SpendingPatterns(r.Context(), userID, days)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, patterns)
}

// CategoryAnalysis handles GET /analytics/category-analysis requests. The
// optional category query parameter restricts the analysis to one category.
func (h *AnalyticsHandler) CategoryAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	category := r.URL.Query().Get("category")
	days := queryInt(r, "days", 0)

	analysis, err := h.analyticsService.CategoryAnalysis(r.Context(), userID, category, days)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, analysis)
}
