package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fableworks/fable/internal/config"
	"github.com/fableworks/fable/internal/logging"
)

// loadConfig reads the environment configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.FromEnv()

	if api, _ := cmd.Flags().GetString("api"); api != "" {
		cfg.APIURL = api
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}

	return cfg
}

func newLogger(cfg config.Config) *slog.Logger {
	return logging.New(logging.ParseLevel(cfg.LogLevel))
}
