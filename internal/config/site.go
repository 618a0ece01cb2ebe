package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hevindesign/sitegen/internal/domain"
)

// Site describes what to emit and where.
type Site struct {
	// Output is the destination path, relative to the working directory.
	Output string `yaml:"output"`

	// Parts are concatenated in order to form the payload.
	// Empty means the embedded landing page.
	Parts []string `yaml:"parts"`
}

// DefaultSite returns the site used when no config file is given.
func DefaultSite() *Site {
	return &Site{
		Output: DefaultOutput,
	}
}

// LoadSite reads a YAML site file over DefaultSite.
// Relative part paths are resolved against the directory of the file.
func LoadSite(path string) (*Site, error) {
	site := DefaultSite()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("parse site config %s: %w", path, err)
	}

	if err := site.Validate(); err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	for i, part := range site.Parts {
		if !filepath.IsAbs(part) {
			site.Parts[i] = filepath.Join(base, part)
		}
	}

	return site, nil
}

// Validate checks that required fields are present.
func (s *Site) Validate() error {
	if strings.TrimSpace(s.Output) == "" {
		return fmt.Errorf("%w: output is required", domain.ErrInvalidSite)
	}
	for i, part := range s.Parts {
		if strings.TrimSpace(part) == "" {
			return fmt.Errorf("%w: parts[%d] is empty", domain.ErrInvalidSite, i)
		}
	}
	return nil
}
