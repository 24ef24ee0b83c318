package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fableworks/fable/internal/cli"
	"github.com/fableworks/fable/pkg/adapters/file"
	"github.com/fableworks/fable/pkg/client"
	"github.com/fableworks/fable/pkg/domain"
	"github.com/fableworks/fable/pkg/player"
)

var playCmd = &cobra.Command{
	Use:   "play <adventure-id>",
	Short: "Play one adventure in the terminal",
	Long: `Plays a single adventure from start to an ending. By default the adventure
is fetched from the fable API; with --dir it is read from a local adventure
directory instead.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		logger := newLogger(cfg)
		id := args[0]

		var (
			adv *domain.Adventure
			err error
		)
		if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
			adv, err = file.New(dir).Get(cmd.Context(), id)
		} else {
			adv, err = client.New(cfg.APIURL).GetAdventure(cmd.Context(), id)
		}
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				fmt.Printf("Adventure %q not found\n", id)
			} else {
				fmt.Printf("Error loading adventure: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("%s\n", adv.Title)
		if adv.Description != "" {
			fmt.Printf("%s\n", adv.Description)
		}

		if err := cli.Play(adv, logger, cli.WithIO(os.Stdin, os.Stdout)); err != nil {
			if errors.Is(err, player.ErrNoStartNode) {
				fmt.Println("This adventure has no start node yet. Open it in the studio first.")
			} else {
				fmt.Printf("Error: %v\n", err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringP("dir", "d", "", "Play from a local adventure directory instead of the API")
}
