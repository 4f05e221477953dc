package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stencildev/stencil/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List projects scaffolded from this directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := history.Load(history.DefaultPath)
		if err != nil {
			return err
		}
		if len(catalog.Runs) == 0 {
			fmt.Fprintln(os.Stderr, "no scaffold runs recorded")
			return nil
		}
		for _, run := range catalog.Runs {
			fmt.Fprintf(os.Stdout, "%s  %-20s  v%-8s  %6dms  %s\n",
				run.ScaffoldedAt.Format("2006-01-02 15:04:05"),
				run.Name, run.BlueprintVersion, run.DurationMS, run.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
