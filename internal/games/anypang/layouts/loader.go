// Package layouts loads fixed starting boards for AnyPang.
// This package depends on core but core does not depend on layouts.
package layouts

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/anypang/internal/games/anypang/core"
	"github.com/vovakirdan/anypang/internal/games/anypang/layouts/formats"
)

// Layout is a complete starting board definition.
type Layout struct {
	ID       string
	Name     string
	Seed     int64
	HasSeed  bool
	Types    []core.Type
	Metadata map[string]string
	FilePath string
}

// NewBoard builds the layout's starting board.
func (l *Layout) NewBoard() (*core.Board, error) {
	return core.NewBoardFromTypes(l.Types)
}

// NewState builds a state on the layout's board. Refills are drawn from a
// source seeded with the layout seed when present, otherwise fallbackSeed.
func (l *Layout) NewState(fallbackSeed int64) (*core.State, error) {
	b, err := l.NewBoard()
	if err != nil {
		return nil, err
	}
	seed := fallbackSeed
	if l.HasSeed {
		seed = l.Seed
	}
	return core.NewStateWithBoard(b, core.NewRandSource(seed)), nil
}

// Loader loads layouts from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new layout loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively loads every layout file below Root.
// Invalid files are skipped. Layouts are sorted by ID.
func (l *Loader) LoadAll() ([]Layout, error) {
	var out []Layout

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		layout, err := LoadFile(path)
		if err != nil {
			return nil
		}
		out = append(out, layout)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadByID loads a specific layout by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}
	for _, layout := range all {
		if layout.ID == id {
			return layout, nil
		}
	}
	return Layout{}, fmt.Errorf("layout not found: %s", id)
}

// LoadFile loads a single layout file.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !isSupportedExtension(ext) {
		return Layout{}, fmt.Errorf("unsupported extension: %s", ext)
	}

	parsed, err := formats.ParseYAML(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	return Layout{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Seed:     parsed.Seed,
		HasSeed:  parsed.HasSeed,
		Types:    parsed.Types,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}
