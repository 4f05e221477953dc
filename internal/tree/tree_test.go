package tree

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func decode(t *testing.T, doc string) Node {
	t.Helper()
	var n Node
	if err := yaml.Unmarshal([]byte(doc), &n); err != nil {
		t.Fatalf("decoding structure: %v", err)
	}
	return n
}

func TestUnmarshal_Order(t *testing.T) {
	t.Parallel()

	n := decode(t, "zeta: null\nalpha:\n  mid: null\nbeta: null\n")

	got := make([]string, 0, len(n.Children()))
	for _, c := range n.Children() {
		got = append(got, c.Name)
	}
	want := []string{"zeta", "alpha", "beta"}
	if len(got) != len(want) {
		t.Fatalf("children = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child[%d] = %q, want %q (document order must be kept)", i, got[i], want[i])
		}
	}
}

func TestUnmarshal_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"scalar", "src: code\n"},
		{"sequence", "src:\n  - lib\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var n Node
			if err := yaml.Unmarshal([]byte(tt.doc), &n); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}

func TestMaterialize(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	n := decode(t, "src:\n  lib: null\n  bin: null\ndocs: null\n")

	if err := Materialize(root, n); err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	for _, dir := range []string{"src", "src/lib", "src/bin", "docs"} {
		info, err := os.Stat(filepath.Join(root, dir))
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory %s", dir)
		}
	}

	// Leaves carry the marker; interior directories do not.
	for _, leaf := range []string{"src/lib", "src/bin", "docs"} {
		if _, err := os.Stat(filepath.Join(root, leaf, MarkerFile)); err != nil {
			t.Errorf("expected marker in %s: %v", leaf, err)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "src", MarkerFile)); !os.IsNotExist(err) {
		t.Error("interior directory src must not contain a marker")
	}
}

func TestBuild_ExistingDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "docs"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := Build(root, "docs", NewLeaf()); err != nil {
		t.Fatalf("Build over existing directory: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "docs", MarkerFile)); err != nil {
		t.Errorf("expected marker: %v", err)
	}
}

func TestMaterialize_EmptyStructure(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := Materialize(root, Node{}); err != nil {
		t.Fatalf("Materialize of absent structure: %v", err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
