package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hevindesign/sitegen/internal/config"
	"github.com/hevindesign/sitegen/internal/content"
	"github.com/hevindesign/sitegen/internal/domain"
	"github.com/hevindesign/sitegen/internal/emitter"
)

// Ledger persists successful emissions.
type Ledger interface {
	Create(ctx context.Context, emission *domain.Emission) error
}

// EmitService resolves a site's payload, writes it and records the result.
type EmitService struct {
	emitter *emitter.Emitter
	ledger  Ledger
}

// NewEmitService creates a new EmitService. ledger may be nil, in which case
// emissions are not recorded.
func NewEmitService(e *emitter.Emitter, ledger Ledger) *EmitService {
	return &EmitService{
		emitter: e,
		ledger:  ledger,
	}
}

// Emit writes the site's payload to its output.
//
// A ledger failure does not undo the write: the file and the confirmation
// line are already produced when the record is attempted.
func (s *EmitService) Emit(ctx context.Context, site *config.Site) (*domain.Emission, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}

	payload, err := content.Resolve(site)
	if err != nil {
		return nil, fmt.Errorf("resolve payload: %w", err)
	}

	emission, err := s.emitter.Emit(ctx, payload, site.Output)
	if err != nil {
		return nil, err
	}

	if s.ledger == nil {
		return emission, nil
	}

	if err := s.ledger.Create(ctx, emission); err != nil {
		slog.Error("failed to record emission",
			"emission_id", emission.ID,
			"destination", emission.Destination,
			"error", err,
		)
		return emission, fmt.Errorf("record emission %s: %w", emission.ID, err)
	}

	slog.Info("emission recorded",
		"emission_id", emission.ID,
		"destination", emission.Destination,
		"bytes", emission.Bytes,
	)

	return emission, nil
}
