// Package content assembles the payload handed to the emitter.
package content

import (
	"fmt"
	"os"
	"strings"

	"github.com/hevindesign/sitegen/internal/config"
	"github.com/hevindesign/sitegen/internal/domain"
	"github.com/hevindesign/sitegen/internal/static"
)

// Embedded returns the landing page compiled into the binary.
func Embedded() domain.Payload {
	return domain.NewPayload(static.IndexHTML)
}

// FromParts concatenates the part files in order.
// Parts are joined verbatim, with no separator added.
func FromParts(paths []string) (domain.Payload, error) {
	if len(paths) == 0 {
		return domain.Payload{}, domain.ErrNoParts
	}

	var b strings.Builder
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return domain.Payload{}, fmt.Errorf("%w: part %d (%s): %w", domain.ErrPartUnreadable, i+1, path, err)
		}
		b.Write(data)
	}

	return domain.NewPayload(b.String()), nil
}

// Resolve picks the payload for a site: its parts when listed, otherwise
// the embedded page.
func Resolve(site *config.Site) (domain.Payload, error) {
	if len(site.Parts) == 0 {
		return Embedded(), nil
	}
	return FromParts(site.Parts)
}
