package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/hevindesign/sitegen/internal/domain"
	"github.com/hevindesign/sitegen/internal/handler/dto"
	"github.com/hevindesign/sitegen/internal/middleware"
)

// EmissionStore is the read side of the emission ledger.
type EmissionStore interface {
	Ping(ctx context.Context) error
	GetByID(ctx context.Context, emissionID string) (*domain.Emission, error)
	List(ctx context.Context, limit int) ([]*domain.Emission, error)
}

// Handler serves the output directory and the emission ledger API.
type Handler struct {
	siteDir   string
	emissions EmissionStore
}

// New creates a new Handler. emissions may be nil when no ledger is configured.
func New(siteDir string, emissions EmissionStore) *Handler {
	return &Handler{
		siteDir:   siteDir,
		emissions: emissions,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Emission ledger
	mux.HandleFunc("GET /api/v1/emissions", h.handleListEmissions)
	mux.HandleFunc("GET /api/v1/emissions/{id}", h.handleGetEmission)

	// Emitted page and its sibling assets
	mux.Handle("GET /", http.FileServer(http.Dir(h.siteDir)))
}

// Routes returns the registered routes wrapped in request middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return middleware.RequestID(middleware.Logging(mux))
}

// handleHealthz returns 200 OK, or 503 if a configured ledger is unreachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if h.emissions != nil {
		if err := h.emissions.Ping(r.Context()); err != nil {
			slog.Error("ledger health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps a domain error to a response.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// extractEmissionID extracts and validates emission ID from path parameter.
// Returns (emissionID, true) if valid, ("", false) if invalid (error already sent to client).
func extractEmissionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	emissionID := r.PathValue("id")
	if _, err := uuid.Parse(emissionID); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "emission id must be a valid UUID")
		return "", false
	}

	return emissionID, true
}
