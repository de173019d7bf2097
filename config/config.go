// Package config loads GoMix-K's runtime configuration via spf13/viper,
// the config-loading library the rest of the pack (DataDog-datadog-agent)
// depends on throughout its comp/config components. GoMix-K's needs are
// far smaller — a handful of CLI/REPL knobs — so this package wires viper
// directly rather than reproducing the agent's multi-source component
// graph.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings gomixrc.yaml (or GOMIX_* env vars) may
// override.
type Config struct {
	// Prompt is the REPL prompt string.
	Prompt string `mapstructure:"prompt"`
	// Debug turns on klog's SugaredLogger output.
	Debug bool `mapstructure:"debug"`
	// HistoryFile is loaded from configuration; the REPL does not read it,
	// and line history is not persisted to a file.
	HistoryFile string `mapstructure:"history_file"`
}

func defaults() Config {
	return Config{
		Prompt:      "  ",
		Debug:       false,
		HistoryFile: "",
	}
}

// Load reads gomixrc.yaml from the current directory, $HOME, or
// /etc/gomix-k, falling back to built-in defaults when no file is found.
// GOMIX_ prefixed environment variables override file values.
func Load() (Config, error) {
	cfg := defaults()

	v := viper.New()
	v.SetConfigName("gomixrc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	v.AddConfigPath("/etc/gomix-k")

	v.SetEnvPrefix("GOMIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("prompt", cfg.Prompt)
	v.SetDefault("debug", cfg.Debug)
	v.SetDefault("history_file", cfg.HistoryFile)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
