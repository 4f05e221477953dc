package blueprint

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the conventional blueprint location relative to the
// invocation directory.
const DefaultPath = "blueprint.yaml"

// Load reads and decodes a blueprint file. The returned Blueprint is treated
// as read-only by every downstream consumer.
func Load(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading blueprint: %w", err)
	}

	var bp Blueprint
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("parsing blueprint %s: %w", path, err)
	}

	if bp.Version == "" {
		return nil, fmt.Errorf("blueprint %s: missing version", path)
	}
	if bp.NPM.Name == "" {
		return nil, fmt.Errorf("blueprint %s: missing npm.name", path)
	}
	return &bp, nil
}
