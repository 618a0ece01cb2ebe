package dto

import (
	"time"

	"github.com/hevindesign/sitegen/internal/domain"
)

// EmissionResponse represents one recorded emission.
type EmissionResponse struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Bytes       int64     `json:"bytes"`
	SHA256      string    `json:"sha256"`
	EmittedAt   time.Time `json:"emitted_at"`
}

// EmissionsListResponse represents the response for GET /emissions.
type EmissionsListResponse struct {
	Emissions []EmissionResponse `json:"emissions"`
	Limit     int                `json:"limit"`
}

// NewEmissionResponse converts a domain emission.
func NewEmissionResponse(e *domain.Emission) EmissionResponse {
	return EmissionResponse{
		ID:          e.ID,
		Destination: e.Destination,
		Bytes:       e.Bytes,
		SHA256:      e.SHA256,
		EmittedAt:   e.EmittedAt,
	}
}

// NewEmissionsListResponse converts a page of domain emissions.
func NewEmissionsListResponse(emissions []*domain.Emission, limit int) EmissionsListResponse {
	items := make([]EmissionResponse, 0, len(emissions))
	for _, e := range emissions {
		items = append(items, NewEmissionResponse(e))
	}
	return EmissionsListResponse{
		Emissions: items,
		Limit:     limit,
	}
}
