package handler

import (
	"net/http"
	"strconv"

	"github.com/hevindesign/sitegen/internal/config"
	"github.com/hevindesign/sitegen/internal/domain"
	"github.com/hevindesign/sitegen/internal/handler/dto"
)

const maxListLimit = 200

// handleListEmissions returns the most recent emissions.
func (h *Handler) handleListEmissions(w http.ResponseWriter, r *http.Request) {
	if h.emissions == nil {
		respondDomainError(w, domain.ErrLedgerDisabled)
		return
	}

	limit := config.DefaultHistoryLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		n, err := strconv.Atoi(limitParam)
		if err != nil || n <= 0 || n > maxListLimit {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be between 1 and 200")
			return
		}
		limit = n
	}

	emissions, err := h.emissions.List(r.Context(), limit)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewEmissionsListResponse(emissions, limit))
}

// handleGetEmission returns one emission by ID.
func (h *Handler) handleGetEmission(w http.ResponseWriter, r *http.Request) {
	if h.emissions == nil {
		respondDomainError(w, domain.ErrLedgerDisabled)
		return
	}

	emissionID, ok := extractEmissionID(w, r)
	if !ok {
		return
	}

	emission, err := h.emissions.GetByID(r.Context(), emissionID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewEmissionResponse(emission))
}
