// Package tree materializes a blueprint's declarative directory layout on
// disk. Empty leaf directories receive a marker file so that git, which does
// not track directories, still preserves them.
package tree

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MarkerFile is written into every empty leaf directory.
const MarkerFile = ".gitkeep"

// Node is one directory in the declared layout. A leaf (declared as null in
// the blueprint) has a nil child slice; an interior node holds its children
// in declaration order.
type Node struct {
	children []Child
	mapping  bool
}

// Child pairs a directory name with its subtree.
type Child struct {
	Name string
	Node Node
}

// Leaf reports whether the node was declared as an empty leaf directory.
// An interior node with zero children is not a leaf: it gets a directory
// but no marker file.
func (n Node) Leaf() bool {
	return !n.mapping
}

// Children returns the node's subdirectories in declaration order.
func (n Node) Children() []Child {
	return n.children
}

// NewLeaf returns a leaf node.
func NewLeaf() Node {
	return Node{}
}

// NewNode returns an interior node with the given children.
func NewNode(children ...Child) Node {
	if children == nil {
		children = []Child{}
	}
	return Node{children: children, mapping: true}
}

// UnmarshalYAML decodes a structure subtree. A null scalar is a leaf; a
// mapping is an interior node whose children keep document order. Any other
// shape is rejected.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag != "!!null" {
			return fmt.Errorf("line %d: structure entry must be null or a mapping, got scalar %q", value.Line, value.Value)
		}
		*n = Node{}
		return nil
	case yaml.MappingNode:
		children := make([]Child, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i]
			var sub Node
			if err := sub.UnmarshalYAML(value.Content[i+1]); err != nil {
				return err
			}
			children = append(children, Child{Name: key.Value, Node: sub})
		}
		*n = Node{children: children, mapping: true}
		return nil
	default:
		return fmt.Errorf("line %d: structure entry must be null or a mapping", value.Line)
	}
}

// Build creates parent/name (and any missing ancestors), then either drops a
// marker file for a leaf or recurses into the children in declaration order.
// Already-existing directories are not an error.
func Build(parent, name string, n Node) error {
	dir := filepath.Join(parent, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if n.Leaf() {
		marker := filepath.Join(dir, MarkerFile)
		if err := os.WriteFile(marker, nil, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", marker, err)
		}
		return nil
	}

	for _, child := range n.children {
		if err := Build(dir, child.Name, child.Node); err != nil {
			return err
		}
	}
	return nil
}

// Materialize builds every top-level entry of the declared structure under
// root. A blueprint with no structure section is a no-op.
func Materialize(root string, structure Node) error {
	for _, child := range structure.Children() {
		if err := Build(root, child.Name, child.Node); err != nil {
			return err
		}
	}
	return nil
}
