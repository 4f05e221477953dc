package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stencildev/stencil/internal/blueprint"
	"github.com/stencildev/stencil/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the blueprint without touching the filesystem",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		applyFlagOverrides(cmd, &cfg)

		bp, err := blueprint.Load(cfg.Blueprint)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "✓ blueprint %s parsed (project %q)\n", cfg.Blueprint, bp.NPM.Name)

		if err := blueprint.CheckVersion(bp.Version, blueprint.SupportedRange); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "✓ version %s within supported range %s\n", bp.Version, blueprint.SupportedRange)
		return nil
	},
}

func init() {
	validateCmd.Flags().String("blueprint", "", "override blueprint file path")

	rootCmd.AddCommand(validateCmd)
}
