package api

import (
	"log/slog"
	"net/http"

	"github.com/trancendos/alervato/internal/service"
)

// CostHandler handles cost record HTTP requests, including the approval
// workflow endpoints.
type CostHandler struct {
	costService service.CostService
	logger      *slog.Logger
}

// NewCostHandler creates a new CostHandler.
func NewCostHandler(costService service.CostService, logger *slog.Logger) *CostHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &CostHandler{
		costService: costService,
		logger:      logger.With(slog.String("component", "cost_handler")),
	}
}

// List handles GET /costs requests.
func (h *CostHandler) List(w http.ResponseWriter, r *http.Request) {
	costs, err := h.costService.List(r.Context())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, costs)
}

// Create handles POST /costs requests. New records start PENDING.
func (h *CostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CostRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	cost, err := h.costService.Create(r.Context(), service.CostInput{
		ServiceName: req.ServiceName,
		CostDetails: req.CostDetails,
	})
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, cost)
}

// Approve handles POST /costs/{id}/approve requests.
func (h *CostHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid id")
		return
	}

	cost, err := h.costService.Approve(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, cost)
}

// Reject handles POST /costs/{id}/reject requests.
func (h *CostHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid id")
		return
	}

	cost, err := h.costService.Reject(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, cost)
}
