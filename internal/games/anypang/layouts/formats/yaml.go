// Package formats provides board layout file parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/anypang/internal/games/anypang/core"
	"gopkg.in/yaml.v3"
)

// YAMLLayout is the on-disk structure of a layout file.
type YAMLLayout struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Seed     *int64            `yaml:"seed,omitempty"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Layout is a parsed layout ready for use.
type Layout struct {
	ID       string
	Name     string
	Seed     int64
	HasSeed  bool
	Types    []core.Type // index order, row 0 at the bottom
	Metadata map[string]string
}

// ParseYAML parses a YAML layout file. Rows are listed top row first.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Layout{}, fmt.Errorf("layout id is required: %w", core.ErrInvalidLayout)
	}

	types, err := core.ParseRows(yl.Rows)
	if err != nil {
		return Layout{}, err
	}

	l := Layout{
		ID:       yl.ID,
		Name:     yl.Name,
		Types:    types,
		Metadata: yl.Metadata,
	}
	if l.Name == "" {
		l.Name = l.ID
	}
	if yl.Seed != nil {
		l.Seed = *yl.Seed
		l.HasSeed = true
	}
	return l, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
