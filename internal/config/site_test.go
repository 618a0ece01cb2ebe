package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hevindesign/sitegen/internal/config"
	"github.com/hevindesign/sitegen/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefaultSite(t *testing.T) {
	site := config.DefaultSite()

	require.NoError(t, site.Validate())
	assert.Equal(t, "index.html", site.Output)
	assert.Empty(t, site.Parts)
}

func TestLoadSite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	writeFile(t, path, `
output: public/index.html
parts:
  - parts/head.html
  - /abs/body.html
`)

	site, err := config.LoadSite(path)
	require.NoError(t, err)

	assert.Equal(t, "public/index.html", site.Output)
	assert.Equal(t, []string{
		filepath.Join(dir, "parts/head.html"),
		"/abs/body.html",
	}, site.Parts)
}

func TestLoadSite_KeepsDefaultOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	writeFile(t, path, "parts: [a.html]\n")

	site, err := config.LoadSite(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultOutput, site.Output)
}

func TestLoadSite_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "blank output", content: "output: \"  \"\n"},
		{name: "empty part", content: "parts: [a.html, \"\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "site.yaml")
			writeFile(t, path, tt.content)

			_, err := config.LoadSite(path)
			assert.ErrorIs(t, err, domain.ErrInvalidSite)
		})
	}
}

func TestLoadSite_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	writeFile(t, path, "output: [unterminated\n")

	_, err := config.LoadSite(path)
	assert.Error(t, err)
}

func TestLoadSite_Missing(t *testing.T) {
	_, err := config.LoadSite(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
