package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stencildev/stencil/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "stencil",
	Short: "Blueprint-driven project scaffolder",
	Long:  "Stencil reads a declarative blueprint and materializes it as a new project directory: folder tree, git repository, package.json, and task-runner config files.",
	RunE:  runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .stencil.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".stencil")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("STENCIL")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault scaffolds immediately when a blueprint exists in the cwd.
// Otherwise it falls back to showing help.
func runRootDefault(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	wd, err := os.Getwd()
	if err != nil {
		return cmd.Help()
	}
	if _, err := os.Stat(filepath.Join(wd, cfg.Blueprint)); os.IsNotExist(err) {
		return cmd.Help()
	}
	// Delegate to the new subcommand.
	return runNew(newCmd, nil)
}
