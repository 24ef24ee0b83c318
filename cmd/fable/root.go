package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fable",
	Short: "Fable is a choose-your-own-adventure engine",
	Long:  `Fable lets you write, serve and play branching interactive stories made of linked markdown nodes.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("api", "", "Base URL of the fable API (overrides FABLE_API_URL)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides FABLE_LOG_LEVEL)")
}
