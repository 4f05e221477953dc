package config

import "github.com/spf13/viper"

// Config holds runtime configuration for a stencil invocation.
// Values are populated from .stencil.yaml, STENCIL_* env vars, and CLI flags.
type Config struct {
	Blueprint   string `mapstructure:"blueprint"`
	GitPath     string `mapstructure:"git_path"`
	NpmPath     string `mapstructure:"npm_path"`
	SkipInstall bool   `mapstructure:"skip_install"`
	SkipGit     bool   `mapstructure:"skip_git"`
	Verbose     bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("blueprint", "blueprint.yaml")
	viper.SetDefault("git_path", "git")
	viper.SetDefault("npm_path", "npm")
	viper.SetDefault("skip_install", false)
	viper.SetDefault("skip_git", false)
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
