// Package taskfile emits task-runner configuration files (gulpfile.js,
// Gruntfile.js) from a blueprint's plugin declarations. Both runners share
// one generator parameterized by a Runner descriptor; only the file name and
// trailer shape differ.
package taskfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stencildev/stencil/internal/blueprint"
)

// DevRegistry receives devDependency registrations from the generator.
// *manifest.Builder satisfies it.
type DevRegistry interface {
	SetDevDependency(name, pin string)
}

// InstallFunc triggers a global, best-effort install of the runner's CLI
// package. The generator never observes its outcome.
type InstallFunc func(pkg string)

// Runner describes one task runner's generation strategy.
type Runner struct {
	// Tool is the npm package wired into the generated config and registered
	// as a devDependency.
	Tool string
	// CLI is the package installed globally so the generated config can be
	// executed later.
	CLI string
	// FileName is the config file written into the project root.
	FileName string
	// Trailer writes the runner-specific block after the require statements.
	Trailer func(b *strings.Builder, plugins []string)
}

// Gulp emits gulpfile.js with an empty default task.
var Gulp = Runner{
	Tool:     "gulp",
	CLI:      "gulp-cli",
	FileName: "gulpfile.js",
	Trailer: func(b *strings.Builder, plugins []string) {
		b.WriteString("gulp.task('default', function () {});\n")
	},
}

// Grunt emits Gruntfile.js: an init block that loads every plugin's tasks and
// registers an empty default task.
var Grunt = Runner{
	Tool:     "grunt",
	CLI:      "grunt-cli",
	FileName: "Gruntfile.js",
	Trailer: func(b *strings.Builder, plugins []string) {
		b.WriteString("module.exports = function (grunt) {\n")
		b.WriteString("  grunt.initConfig({});\n")
		for _, name := range plugins {
			b.WriteString("\n")
			fmt.Fprintf(b, "  grunt.loadNpmTasks('%s');\n", name)
		}
		b.WriteString("\n")
		b.WriteString("  grunt.registerTask('default', []);\n")
		b.WriteString("};\n")
	},
}

// Generate renders the runner's config file into dir and registers the
// matching devDependencies. A disabled declaration produces nothing and
// reports written=false. For an enabled declaration the runner's CLI install
// is triggered (fire-and-forget), the runner itself is registered at
// "latest", and mapping-form plugins are registered at their declared pins.
// List-form plugins appear in the require statements only.
func Generate(dir string, decl blueprint.PluginDecl, r Runner, reg DevRegistry, install InstallFunc) (written bool, err error) {
	if decl.Kind == blueprint.PluginsDisabled {
		return false, nil
	}

	install(r.CLI)
	reg.SetDevDependency(r.Tool, "")

	names := make([]string, 0, len(decl.Plugins))
	for _, p := range decl.Plugins {
		names = append(names, p.Name)
		if decl.Kind == blueprint.PluginsPinned {
			reg.SetDevDependency(p.Name, p.Pin)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "var %s = require('%s');\n", Camelize(r.Tool), r.Tool)
	for _, name := range names {
		fmt.Fprintf(&b, "var %s = require('%s');\n", Camelize(name), name)
	}
	b.WriteString("\n")
	r.Trailer(&b, names)

	path := filepath.Join(dir, r.FileName)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
