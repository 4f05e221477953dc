package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stencildev/stencil/internal/config"
	"github.com/stencildev/stencil/internal/gitx"
	"github.com/stencildev/stencil/internal/history"
	"github.com/stencildev/stencil/internal/npm"
	"github.com/stencildev/stencil/internal/scaffold"
	"github.com/stencildev/stencil/internal/ui"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a project from the blueprint",
	RunE:  runNew,
}

func init() {
	newCmd.Flags().String("blueprint", "", "override blueprint file path")
	newCmd.Flags().Bool("skip-install", false, "skip npm installs (project and global)")
	newCmd.Flags().Bool("skip-git", false, "skip git repository initialization")

	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	applyFlagOverrides(cmd, &cfg)
	printer := ui.New(cfg.Verbose)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	pipeline := buildPipeline(&cfg, printer)
	if _, err := pipeline.Run(ctx, wd); err != nil {
		printer.Error("%v", err)
		os.Exit(1)
	}
	return nil
}

// applyFlagOverrides applies CLI flag values to the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("blueprint"); v != "" {
		cfg.Blueprint = v
	}
	if v, _ := cmd.Flags().GetBool("skip-install"); v {
		cfg.SkipInstall = true
	}
	if v, _ := cmd.Flags().GetBool("skip-git"); v {
		cfg.SkipGit = true
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
}

// buildPipeline wires the scaffold pipeline with real git and npm clients.
func buildPipeline(cfg *config.Config, printer *ui.Printer) *scaffold.Pipeline {
	return &scaffold.Pipeline{
		BlueprintPath: cfg.Blueprint,
		HistoryPath:   history.DefaultPath,
		SkipInstall:   cfg.SkipInstall,
		SkipGit:       cfg.SkipGit,
		Git:           &gitx.Client{Path: cfg.GitPath},
		NPM:           &npm.Client{Path: cfg.NpmPath},
		Printer:       printer,
	}
}
