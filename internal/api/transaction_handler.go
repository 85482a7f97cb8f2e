package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/trancendos/alervato/internal/domain"
	"github.com/trancendos/alervato/internal/platform/logger"
	"github.com/trancendos/alervato/internal/service"
)

// TransactionHandler handles transaction-related HTTP requests.
// All routes require authentication; every operation is scoped to the
// authenticated user.
type TransactionHandler struct {
	transactionService service.TransactionService
	logger             *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService service.TransactionService, logger *slog.Logger) *TransactionHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger.With(slog.String("component", "transaction_handler")),
	}
}

// List handles GET /transactions requests. Pagination comes from the
// page and size query parameters.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", service.DefaultPageSize)

	result, err := h.transactionService.List(r.Context(), userID, page, size)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, TransactionPageResponse{
		Items:      result.Items,
		Page:       result.Page,
		Size:       result.Size,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}

// Create handles POST /transactions requests.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	input, ok := h.decodeTransactionRequest(w, r)
	if !ok {
		return
	}

	txn, err := h.transactionService.Create(r.Context(), userID, input)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, txn)
}

// Get handles GET /transactions/{id} requests.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	txn, err := h.transactionService.Get(r.Context(), id, userID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, txn)
}

// Update handles PUT /transactions/{id} requests.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	input, ok := h.decodeTransactionRequest(w, r)
	if !ok {
		return
	}

	txn, err := h.transactionService.Update(r.Context(), id, userID, input)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, txn)
}

// Delete handles DELETE /transactions/{id} requests.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.transactionService.Delete(r.Context(), id, userID); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Debug("transaction deleted",
		slog.String("transaction_id", id.String()))

	w.WriteHeader(http.StatusNoContent)
}

// decodeTransactionRequest parses and validates the transaction payload,
// writing the error response itself on failure.
func (h *TransactionHandler) decodeTransactionRequest(
	w http.ResponseWriter,
	r *http.Request,
) (service.TransactionInput, bool) {
	var req TransactionRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return service.TransactionInput{}, false
	}

	if err := ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return service.TransactionInput{}, false
	}

	var transactionDate time.Time
	if req.TransactionDate != nil {
		transactionDate = *req.TransactionDate
	}

	return service.TransactionInput{
		Amount:          req.Amount,
		Description:     req.Description,
		Type:            domain.TransactionType(req.Type),
		Category:        req.Category,
		TransactionDate: transactionDate,
		ReferenceNumber: req.ReferenceNumber,
	}, true
}

// queryInt parses an integer query parameter, falling back to the default
// on absence or garbage.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
