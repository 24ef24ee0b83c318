package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fableworks/fable/internal/cli"
	"github.com/fableworks/fable/internal/presentation/tui"
	"github.com/fableworks/fable/pkg/client"
)

var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Open the interactive adventure studio",
	Long: `Opens the terminal studio against a running fable API: browse your
adventures, edit their nodes and choices, and play them back.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		logger := newLogger(cfg)

		tui.PrintBanner()
		fmt.Printf("Connected to %s\n", cfg.APIURL)

		app := cli.NewApp(client.New(cfg.APIURL), logger, cli.WithIO(os.Stdin, os.Stdout))
		if err := app.Run(cmd.Context()); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(studioCmd)
}
