package service_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hevindesign/sitegen/internal/config"
	"github.com/hevindesign/sitegen/internal/content"
	"github.com/hevindesign/sitegen/internal/domain"
	"github.com/hevindesign/sitegen/internal/emitter"
	"github.com/hevindesign/sitegen/internal/service"
)

// fakeLedger records emissions in memory.
type fakeLedger struct {
	emissions []*domain.Emission
	err       error
}

func (l *fakeLedger) Create(_ context.Context, emission *domain.Emission) error {
	if l.err != nil {
		return l.err
	}
	l.emissions = append(l.emissions, emission)
	return nil
}

// EmitServiceTestSuite is the test suite for EmitService.
type EmitServiceTestSuite struct {
	suite.Suite
	dir    string
	stdout *bytes.Buffer
	ledger *fakeLedger
	svc    *service.EmitService
}

// SetupTest runs before each test.
func (s *EmitServiceTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.stdout = &bytes.Buffer{}
	s.ledger = &fakeLedger{}
	s.svc = service.NewEmitService(emitter.New(s.stdout), s.ledger)
}

func TestEmitServiceSuite(t *testing.T) {
	suite.Run(t, new(EmitServiceTestSuite))
}

// TestEmit_EmbeddedPage writes the compiled-in page and records it.
func (s *EmitServiceTestSuite) TestEmit_EmbeddedPage() {
	site := &config.Site{Output: filepath.Join(s.dir, "index.html")}

	emission, err := s.svc.Emit(context.Background(), site)
	s.Require().NoError(err)

	data, err := os.ReadFile(site.Output)
	s.Require().NoError(err)
	s.Equal(content.Embedded().String(), string(data))
	s.True(emission.Matches(content.Embedded()))

	s.Require().Len(s.ledger.emissions, 1)
	s.Equal(emission, s.ledger.emissions[0])
	s.Equal(site.Output+" written\n", s.stdout.String())
}

// TestEmit_Parts writes the concatenated parts in a single overwrite.
func (s *EmitServiceTestSuite) TestEmit_Parts() {
	head := filepath.Join(s.dir, "head.html")
	tail := filepath.Join(s.dir, "tail.html")
	s.Require().NoError(os.WriteFile(head, []byte("<html>"), 0o644))
	s.Require().NoError(os.WriteFile(tail, []byte("</html>"), 0o644))

	out := filepath.Join(s.dir, "index.html")
	s.Require().NoError(os.WriteFile(out, []byte("OLD CONTENT"), 0o644))

	_, err := s.svc.Emit(context.Background(), &config.Site{Output: out, Parts: []string{head, tail}})
	s.Require().NoError(err)

	data, err := os.ReadFile(out)
	s.Require().NoError(err)
	s.Equal("<html></html>", string(data))
}

// TestEmit_WithoutLedger skips recording.
func (s *EmitServiceTestSuite) TestEmit_WithoutLedger() {
	svc := service.NewEmitService(emitter.New(s.stdout), nil)

	emission, err := svc.Emit(context.Background(), &config.Site{Output: filepath.Join(s.dir, "index.html")})
	s.Require().NoError(err)
	s.NotNil(emission)
	s.Empty(s.ledger.emissions)
}

// TestEmit_UnwritableOutput records nothing and prints nothing.
func (s *EmitServiceTestSuite) TestEmit_UnwritableOutput() {
	site := &config.Site{Output: filepath.Join(s.dir, "missing", "index.html")}

	_, err := s.svc.Emit(context.Background(), site)

	s.ErrorIs(err, domain.ErrOutputNotWritable)
	s.Empty(s.ledger.emissions)
	s.Empty(s.stdout.String())
}

// TestEmit_MissingPart fails before the output is touched.
func (s *EmitServiceTestSuite) TestEmit_MissingPart() {
	out := filepath.Join(s.dir, "index.html")
	s.Require().NoError(os.WriteFile(out, []byte("OLD CONTENT"), 0o644))

	_, err := s.svc.Emit(context.Background(), &config.Site{
		Output: out,
		Parts:  []string{filepath.Join(s.dir, "gone.html")},
	})

	s.ErrorIs(err, domain.ErrPartUnreadable)
	data, readErr := os.ReadFile(out)
	s.Require().NoError(readErr)
	s.Equal("OLD CONTENT", string(data))
}

// TestEmit_InvalidSite is rejected up front.
func (s *EmitServiceTestSuite) TestEmit_InvalidSite() {
	_, err := s.svc.Emit(context.Background(), &config.Site{})
	s.ErrorIs(err, domain.ErrInvalidSite)
}

// TestEmit_LedgerFailure keeps the written file.
func (s *EmitServiceTestSuite) TestEmit_LedgerFailure() {
	s.ledger.err = errors.New("connection refused")
	site := &config.Site{Output: filepath.Join(s.dir, "index.html")}

	emission, err := s.svc.Emit(context.Background(), site)

	s.Error(err)
	s.ErrorContains(err, "connection refused")
	s.NotNil(emission)
	s.FileExists(site.Output)
	s.Equal(site.Output+" written\n", s.stdout.String())
}
