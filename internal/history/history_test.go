package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	c, err := Load(filepath.Join(t.TempDir(), ".stencil", "history.toml"))
	if err != nil {
		t.Fatalf("Load of missing file: %v", err)
	}
	if len(c.Runs) != 0 {
		t.Errorf("expected empty catalog, got %d runs", len(c.Runs))
	}
}

func TestAppend_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".stencil", "history.toml")
	first := Run{
		Name:             "demo",
		Path:             "/tmp/demo",
		BlueprintVersion: "1.0.0",
		ScaffoldedAt:     time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		DurationMS:       420,
	}
	if err := Append(path, first); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := Append(path, Run{Name: "second", BlueprintVersion: "1.0.2"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(c.Runs))
	}
	got := c.Runs[0]
	if got.Name != first.Name || got.Path != first.Path || got.BlueprintVersion != first.BlueprintVersion || got.DurationMS != first.DurationMS {
		t.Errorf("first run = %+v, want %+v", got, first)
	}
	if !got.ScaffoldedAt.Equal(first.ScaffoldedAt) {
		t.Errorf("scaffolded_at = %v, want %v", got.ScaffoldedAt, first.ScaffoldedAt)
	}
	if c.Runs[1].Name != "second" {
		t.Errorf("second run = %+v", c.Runs[1])
	}
}

func TestLoad_Corrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.toml")
	if err := os.WriteFile(path, []byte("[[runs\nname ="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for corrupt catalog")
	}
}
