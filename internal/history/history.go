// Package history keeps a TOML catalog of completed scaffold runs in the
// invocation directory.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultPath is the conventional location for the run catalog, relative to
// the invocation directory.
const DefaultPath = ".stencil/history.toml"

// Catalog is the full run history.
type Catalog struct {
	Runs []Run `toml:"runs"`
}

// Run records one completed scaffold.
type Run struct {
	Name             string    `toml:"name"`
	Path             string    `toml:"path"`
	BlueprintVersion string    `toml:"blueprint_version"`
	ScaffoldedAt     time.Time `toml:"scaffolded_at"`
	DurationMS       int64     `toml:"duration_ms"`
}

// Load reads a catalog from the given path. A missing file yields an empty
// catalog and no error.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Catalog{}, nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}

	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing history %s: %w", path, err)
	}
	return &c, nil
}

// Save writes the catalog to the given path, creating parent directories as
// needed.
func Save(path string, c *Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing history %s: %w", path, err)
	}
	return nil
}

// Append loads the catalog at path, appends run, and saves it back.
func Append(path string, run Run) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	c.Runs = append(c.Runs, run)
	return Save(path, c)
}
