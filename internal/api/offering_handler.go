package api

import (
	"log/slog"
	"net/http"

	"github.com/trancendos/alervato/internal/service"
)

// OfferingHandler handles customer service offering HTTP requests.
type OfferingHandler struct {
	offeringService service.OfferingService
	logger          *slog.Logger
}

// NewOfferingHandler creates a new OfferingHandler.
func NewOfferingHandler(offeringService service.OfferingService, logger *slog.Logger) *OfferingHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &OfferingHandler{
		offeringService: offeringService,
		logger:          logger.With(slog.String("component", "offering_handler")),
	}
}

// List handles GET /customer-services requests.
func (h *OfferingHandler) List(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.offeringService.List(r.Context())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, offerings)
}

// Create handles POST /customer-services requests.
func (h *OfferingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req OfferingRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	offering, err := h.offeringService.Create(r.Context(), service.OfferingInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, offering)
}
