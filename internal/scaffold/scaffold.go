// Package scaffold sequences the pipeline that turns a blueprint into an
// initialized project directory.
package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stencildev/stencil/internal/blueprint"
	"github.com/stencildev/stencil/internal/history"
	"github.com/stencildev/stencil/internal/manifest"
	"github.com/stencildev/stencil/internal/taskfile"
	"github.com/stencildev/stencil/internal/tree"
	"github.com/stencildev/stencil/internal/ui"
)

// GitClient initializes a version-control repository.
type GitClient interface {
	Init(ctx context.Context, dir string) error
}

// NpmClient installs project and global packages.
type NpmClient interface {
	Install(ctx context.Context, dir string) error
	InstallGlobal(pkg string) error
}

// Pipeline runs one blueprint end to end. Steps execute in a fixed order and
// the first error outside a best-effort step aborts the run, leaving any
// partially scaffolded state behind.
type Pipeline struct {
	BlueprintPath string
	// HistoryPath is where the run catalog lives; empty disables recording.
	HistoryPath string
	SkipInstall bool
	SkipGit     bool

	Git     GitClient
	NPM     NpmClient
	Printer *ui.Printer
}

// Run executes the pipeline. baseDir is the invocation directory; the project
// root is created as its sibling, named after npm.name. If that directory
// already exists it is destroyed and recreated. Returns the project root.
func (p *Pipeline) Run(ctx context.Context, baseDir string) (string, error) {
	started := time.Now()

	p.Printer.Step("loading blueprint %s", p.BlueprintPath)
	bp, err := blueprint.Load(p.BlueprintPath)
	if err != nil {
		return "", err
	}
	if err := blueprint.CheckVersion(bp.Version, blueprint.SupportedRange); err != nil {
		return "", err
	}

	root := filepath.Join(filepath.Dir(baseDir), bp.NPM.Name)
	p.Printer.Step("creating project root %s", root)
	if err := os.RemoveAll(root); err != nil {
		return "", fmt.Errorf("removing existing project root: %w", err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", fmt.Errorf("creating project root: %w", err)
	}

	if err := p.writeStaticFiles(root, bp.NPM.Name); err != nil {
		return "", err
	}

	if p.SkipGit {
		p.Printer.Debug("skipping git init")
	} else {
		p.Printer.Step("initializing git repository")
		// Best-effort: a missing git binary should not kill the scaffold.
		if err := p.Git.Init(ctx, root); err != nil {
			p.Printer.Warn("git init failed: %v", err)
		}
	}

	mb := manifest.NewBuilder(bp.NPM.Name)
	install := p.globalInstaller()

	for _, gen := range []struct {
		decl   blueprint.PluginDecl
		runner taskfile.Runner
	}{
		{bp.NPM.Gulp, taskfile.Gulp},
		{bp.NPM.Grunt, taskfile.Grunt},
	} {
		written, err := taskfile.Generate(root, gen.decl, gen.runner, mb, install)
		if err != nil {
			return "", err
		}
		if written {
			p.Printer.Step("generated %s", gen.runner.FileName)
		}
	}

	mb.MergeDependencies(bp.NPM.Dependencies.Prod)
	mb.MergeDevDependencies(bp.NPM.Dependencies.Dev)

	p.Printer.Step("writing %s", manifest.FileName)
	if err := mb.Write(root); err != nil {
		return "", err
	}

	if p.SkipInstall {
		p.Printer.Debug("skipping npm install")
	} else {
		p.Printer.Step("running npm install")
		if err := p.NPM.Install(ctx, root); err != nil {
			return "", err
		}
	}

	p.Printer.Step("building directory structure")
	if err := tree.Materialize(root, bp.Structure); err != nil {
		return "", err
	}

	if p.HistoryPath != "" {
		run := history.Run{
			Name:             bp.NPM.Name,
			Path:             root,
			BlueprintVersion: bp.Version,
			ScaffoldedAt:     started,
			DurationMS:       time.Since(started).Milliseconds(),
		}
		if err := history.Append(p.HistoryPath, run); err != nil {
			p.Printer.Warn("recording run history: %v", err)
		}
	}

	p.Printer.Done("project %s scaffolded at %s", bp.NPM.Name, root)
	return root, nil
}

// writeStaticFiles drops the readme, empty license, and ignore file into the
// project root.
func (p *Pipeline) writeStaticFiles(root, name string) error {
	files := []struct {
		name string
		body string
	}{
		{"README.md", fmt.Sprintf(readmeTemplate, name)},
		{"LICENSE", licenseBody},
		{".gitignore", gitignoreBody},
	}
	for _, f := range files {
		path := filepath.Join(root, f.name)
		if err := os.WriteFile(path, []byte(f.body), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

// globalInstaller adapts the npm client into the generators' fire-and-forget
// install hook. Launch failures are warnings; completion is never observed.
func (p *Pipeline) globalInstaller() taskfile.InstallFunc {
	return func(pkg string) {
		if p.SkipInstall {
			p.Printer.Debug("skipping global install of %s", pkg)
			return
		}
		p.Printer.Step("triggering global install of %s", pkg)
		if err := p.NPM.InstallGlobal(pkg); err != nil {
			p.Printer.Warn("global install of %s: %v", pkg, err)
		}
	}
}
