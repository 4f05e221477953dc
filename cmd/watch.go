package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/stencildev/stencil/internal/config"
	"github.com/stencildev/stencil/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-scaffold whenever the blueprint file changes",
	Long:  "Watches the blueprint file and re-runs the full pipeline on every change. Each run destroys and recreates the project root, exactly like `stencil new`.",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().String("blueprint", "", "override blueprint file path")
	watchCmd.Flags().Bool("skip-install", false, "skip npm installs (project and global)")
	watchCmd.Flags().Bool("skip-git", false, "skip git repository initialization")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	applyFlagOverrides(cmd, &cfg)
	printer := ui.New(cfg.Verbose)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	target, err := filepath.Abs(cfg.Blueprint)
	if err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	// Watch the parent directory: editors replace files on save, which drops
	// a watch placed on the file itself.
	if err := fw.Add(filepath.Dir(target)); err != nil {
		return err
	}

	pipeline := buildPipeline(&cfg, printer)
	printer.Step("watching %s", cfg.Blueprint)

	// Debounce: editors emit bursts of events per save.
	const debounce = 200 * time.Millisecond
	var pending *time.Timer
	runs := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			printer.Done("watch stopped")
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(debounce, func() {
				select {
				case runs <- struct{}{}:
				default:
				}
			})
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			printer.Warn("watch: %v", err)
		case <-runs:
			if _, err := pipeline.Run(ctx, wd); err != nil {
				// Keep watching: a broken edit should not end the session.
				printer.Error("%v", err)
			}
		}
	}
}
