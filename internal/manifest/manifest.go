// Package manifest assembles the generated package.json. A single Builder is
// threaded through the pipeline; generators register devDependencies on it
// and the orchestrator serializes it exactly once.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the manifest's name inside the project root.
const FileName = "package.json"

// DefaultPin is substituted for dependencies declared without a version pin.
const DefaultPin = "latest"

// Manifest is the package descriptor serialized to package.json.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Main            string            `json:"main,omitempty"`
	Author          string            `json:"author"`
	License         string            `json:"license"`
	Private         bool              `json:"private"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Builder accumulates manifest state across pipeline stages. It is owned by
// the orchestrator and passed by reference to the generators; nothing here is
// safe for concurrent use, matching the pipeline's single-threaded model.
type Builder struct {
	m Manifest
}

// NewBuilder returns a Builder for a package with the given name. Scalar
// fields other than the name start empty.
func NewBuilder(name string) *Builder {
	return &Builder{m: Manifest{
		Name:            name,
		Version:         "0.0.0",
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
	}}
}

// MergeDependencies folds a name→pin map into dependencies. Empty pins
// default to "latest"; colliding keys are overwritten.
func (b *Builder) MergeDependencies(deps map[string]string) {
	merge(b.m.Dependencies, deps)
}

// MergeDevDependencies folds a name→pin map into devDependencies with the
// same defaulting and collision rules as MergeDependencies.
func (b *Builder) MergeDevDependencies(deps map[string]string) {
	merge(b.m.DevDependencies, deps)
}

// SetDevDependency registers a single devDependency. An empty pin defaults
// to "latest".
func (b *Builder) SetDevDependency(name, pin string) {
	if pin == "" {
		pin = DefaultPin
	}
	b.m.DevDependencies[name] = pin
}

func merge(dst, src map[string]string) {
	for name, pin := range src {
		if pin == "" {
			pin = DefaultPin
		}
		dst[name] = pin
	}
}

// Manifest returns a copy of the accumulated record.
func (b *Builder) Manifest() Manifest {
	m := b.m
	m.Dependencies = copyMap(b.m.Dependencies)
	m.DevDependencies = copyMap(b.m.DevDependencies)
	return m
}

func copyMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Write serializes the manifest as pretty-printed JSON into dir. Map keys
// come out sorted, so output is deterministic for a given blueprint.
func (b *Builder) Write(dir string) error {
	data, err := json.MarshalIndent(b.m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", FileName, err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
