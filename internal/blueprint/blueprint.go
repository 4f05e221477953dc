// Package blueprint defines the declarative input document describing a
// project's desired name, dependencies, build tooling, and directory layout.
package blueprint

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/stencildev/stencil/internal/tree"
)

// Blueprint is the root of the declarative input. It is read-only after load.
type Blueprint struct {
	Version   string    `yaml:"version"`
	NPM       NPM       `yaml:"npm"`
	Structure tree.Node `yaml:"structure"`
}

// NPM holds the package-ecosystem section of the blueprint.
type NPM struct {
	Name         string       `yaml:"name"`
	Gulp         PluginDecl   `yaml:"gulp"`
	Grunt        PluginDecl   `yaml:"grunt"`
	Dependencies Dependencies `yaml:"dependencies"`
}

// Dependencies declares production and development dependencies. A null pin
// decodes to the empty string and is defaulted to "latest" at merge time.
type Dependencies struct {
	Prod map[string]string `yaml:"prod"`
	Dev  map[string]string `yaml:"dev"`
}

// PluginKind discriminates the shapes a task-runner declaration can take.
type PluginKind int

const (
	// PluginsDisabled: key absent, null, or false. The generator is a no-op.
	PluginsDisabled PluginKind = iota
	// PluginsEnabled: bare `true` with no plugin list.
	PluginsEnabled
	// PluginsNamed: a sequence of plugin names with no version pins.
	PluginsNamed
	// PluginsPinned: a mapping of plugin name to version pin (or null).
	PluginsPinned
)

// Plugin is one declared task-runner plugin. Pin is empty when the blueprint
// declared no pin.
type Plugin struct {
	Name string
	Pin  string
}

// PluginDecl is a task-runner declaration: disabled, bare-enabled, a plugin
// name list, or an ordered name→pin mapping. Plugins keep document order.
type PluginDecl struct {
	Kind    PluginKind
	Plugins []Plugin
}

// UnmarshalYAML decodes the four accepted declaration shapes.
func (d *PluginDecl) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		switch value.Tag {
		case "!!null":
			*d = PluginDecl{Kind: PluginsDisabled}
			return nil
		case "!!bool":
			var enabled bool
			if err := value.Decode(&enabled); err != nil {
				return err
			}
			kind := PluginsDisabled
			if enabled {
				kind = PluginsEnabled
			}
			*d = PluginDecl{Kind: kind}
			return nil
		}
		return fmt.Errorf("line %d: task-runner declaration must be null, a bool, a list, or a mapping", value.Line)
	case yaml.SequenceNode:
		plugins := make([]Plugin, 0, len(value.Content))
		for _, item := range value.Content {
			var name string
			if err := item.Decode(&name); err != nil {
				return fmt.Errorf("line %d: plugin list entry: %w", item.Line, err)
			}
			plugins = append(plugins, Plugin{Name: name})
		}
		*d = PluginDecl{Kind: PluginsNamed, Plugins: plugins}
		return nil
	case yaml.MappingNode:
		plugins := make([]Plugin, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i]
			val := value.Content[i+1]
			var pin string
			if val.Tag != "!!null" {
				if err := val.Decode(&pin); err != nil {
					return fmt.Errorf("line %d: plugin %q pin: %w", val.Line, key.Value, err)
				}
			}
			plugins = append(plugins, Plugin{Name: key.Value, Pin: pin})
		}
		*d = PluginDecl{Kind: PluginsPinned, Plugins: plugins}
		return nil
	default:
		return fmt.Errorf("line %d: task-runner declaration must be null, a bool, a list, or a mapping", value.Line)
	}
}
