// Package emitter writes a payload verbatim to a destination file.
//
// The destination is created if absent and truncated if present. The file
// handle is released on every path, and a single confirmation line is
// printed only after the file has been closed successfully.
package emitter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hevindesign/sitegen/internal/domain"
)

// fileMode is applied when the destination is created.
const fileMode = 0o644

// Emitter writes payloads and reports completion to out.
type Emitter struct {
	out   io.Writer
	now   func() time.Time
	newID func() string
}

// New creates an Emitter that prints confirmations to out.
func New(out io.Writer) *Emitter {
	return &Emitter{
		out:   out,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Emit writes payload to destination and prints "<destination> written".
// On failure nothing is printed and the error wraps domain.ErrOutputNotWritable.
func (e *Emitter) Emit(ctx context.Context, payload domain.Payload, destination string) (*domain.Emission, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("emit %s: %w", destination, err)
	}

	n, err := Write(payload, destination)
	if err != nil {
		return nil, err
	}

	slog.Debug("payload written",
		"destination", destination,
		"bytes", n,
	)

	if _, err := fmt.Fprintf(e.out, "%s written\n", destination); err != nil {
		slog.Warn("failed to print confirmation", "destination", destination, "error", err)
	}

	return &domain.Emission{
		ID:          e.newID(),
		Destination: destination,
		Bytes:       n,
		SHA256:      payload.Digest(),
		EmittedAt:   e.now().UTC(),
	}, nil
}

// Write opens destination with create+truncate semantics, writes the full
// payload and closes the file. It returns the number of bytes written.
func Write(payload domain.Payload, destination string) (n int64, err error) {
	if strings.TrimSpace(destination) == "" {
		return 0, domain.ErrEmptyDestination
	}

	f, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrOutputNotWritable, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", domain.ErrOutputNotWritable, cerr)
		}
	}()

	written, err := io.WriteString(f, payload.String())
	n = int64(written)
	if err != nil {
		return n, fmt.Errorf("%w: %w", domain.ErrOutputNotWritable, err)
	}

	return n, nil
}
