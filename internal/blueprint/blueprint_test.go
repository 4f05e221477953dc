package blueprint

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPluginDecl_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		want    PluginKind
		plugins []Plugin
	}{
		{"null", "gulp: null", PluginsDisabled, nil},
		{"false", "gulp: false", PluginsDisabled, nil},
		{"true", "gulp: true", PluginsEnabled, nil},
		{
			"list", "gulp:\n  - gulp-sass\n  - gulp-concat",
			PluginsNamed,
			[]Plugin{{Name: "gulp-sass"}, {Name: "gulp-concat"}},
		},
		{
			"mapping", "gulp:\n  gulp-sass: ^3.0.0\n  gulp-concat: null",
			PluginsPinned,
			[]Plugin{{Name: "gulp-sass", Pin: "^3.0.0"}, {Name: "gulp-concat"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var doc struct {
				Gulp PluginDecl `yaml:"gulp"`
			}
			if err := yaml.Unmarshal([]byte(tt.doc), &doc); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if doc.Gulp.Kind != tt.want {
				t.Errorf("Kind = %d, want %d", doc.Gulp.Kind, tt.want)
			}
			if len(doc.Gulp.Plugins) != len(tt.plugins) {
				t.Fatalf("Plugins = %v, want %v", doc.Gulp.Plugins, tt.plugins)
			}
			for i, p := range tt.plugins {
				if doc.Gulp.Plugins[i] != p {
					t.Errorf("Plugins[%d] = %v, want %v", i, doc.Gulp.Plugins[i], p)
				}
			}
		})
	}
}

func TestPluginDecl_RejectsScalar(t *testing.T) {
	t.Parallel()

	var doc struct {
		Gulp PluginDecl `yaml:"gulp"`
	}
	if err := yaml.Unmarshal([]byte("gulp: yes please"), &doc); err == nil {
		t.Error("expected decode error for arbitrary scalar")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "blueprint.yaml")
	doc := `version: "1.0.0"
npm:
  name: demo
  gulp:
    gulp-sass: ^3.0.0
  dependencies:
    prod:
      lodash: ^4.0.0
      chalk: null
structure:
  src: null
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	bp, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if bp.NPM.Name != "demo" {
		t.Errorf("npm.name = %q, want demo", bp.NPM.Name)
	}
	if bp.Version != "1.0.0" {
		t.Errorf("version = %q, want 1.0.0", bp.Version)
	}
	if bp.NPM.Gulp.Kind != PluginsPinned {
		t.Errorf("gulp kind = %d, want PluginsPinned", bp.NPM.Gulp.Kind)
	}
	// A null pin decodes to the empty string; the merge step supplies "latest".
	if pin, ok := bp.NPM.Dependencies.Prod["chalk"]; !ok || pin != "" {
		t.Errorf("chalk pin = %q (present=%v), want empty", pin, ok)
	}
	if len(bp.Structure.Children()) != 1 || bp.Structure.Children()[0].Name != "src" {
		t.Errorf("structure children = %v", bp.Structure.Children())
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"missing version", "npm:\n  name: demo\n"},
		{"missing name", "version: \"1.0.0\"\nnpm: {}\n"},
		{"not yaml", ": : :\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "blueprint.yaml")
			if err := os.WriteFile(path, []byte(tt.doc), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected load error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing blueprint")
	}
}

func TestCheckVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version string
		allowed string
		wantErr bool
	}{
		{"1.0.0", "1.0.x", false},
		{"1.0.7", "1.0.x", false},
		{"2.0.0", "1.0.x", true},
		{"1.1.0", "1.0.x", true},
		{"0.9.0", "1.0.x", true},
		{"garbage", "1.0.x", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.version, func(t *testing.T) {
			t.Parallel()
			err := CheckVersion(tt.version, tt.allowed)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckVersion(%q, %q) error = %v, wantErr %v", tt.version, tt.allowed, err, tt.wantErr)
			}
		})
	}
}
