package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fableworks/fable/pkg/client"
	"github.com/fableworks/fable/pkg/dsl"
	"github.com/fableworks/fable/pkg/domain"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo adventure on the API",
	Long:  `Publishes a small bundled adventure so a fresh install has something to play.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)

		adv, err := demoAdventure()
		if err != nil {
			fmt.Printf("Error building demo adventure: %v\n", err)
			os.Exit(1)
		}

		created, err := client.New(cfg.APIURL).CreateAdventure(cmd.Context(), adv)
		if err != nil {
			fmt.Printf("Error creating adventure: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created %q (%s)\n", created.Title, created.ID)
		fmt.Printf("Play it with: fable play %s\n", created.ID)
	},
}

func demoAdventure() (*domain.Adventure, error) {
	b := dsl.New("The Lighthouse Keeper").
		Describe("A stormy night, a dark tower, and a light that must not go out.")

	b.Node("shore").
		Title("The Shore").
		Text("Rain lashes the rocks. The lighthouse above you is **dark**.\n\nThe keeper has not been seen in days.").
		Start().
		Choice("Climb the path to the lighthouse", "door").
		Choice("Row back to the village", "village")

	b.Node("door").
		Title("The Door").
		Text("The iron door hangs open, banging in the wind. A faint smell of oil drifts out.").
		Choice("Step inside and take the stairs", "lamp-room").
		Choice("Circle the tower first", "shore")

	b.Node("lamp-room").
		Title("The Lamp Room").
		Text("The great lamp is cold. Beside it sits the keeper's logbook, its last entry half-finished.\n\nA box of matches rests on the sill.").
		Choice("Light the lamp", "light").
		Choice("Read the logbook first", "logbook")

	b.Node("logbook").
		Title("The Logbook").
		Text("*\"The light asks more of me each night. Tonight I will not give it.\"*\n\nThe handwriting worsens line by line.").
		Choice("Light the lamp anyway", "light")

	b.Node("light").
		Title("First Light").
		Text("The wick catches. The beam swings out over the black water, and far off a ship's horn answers.\n\nWhatever the keeper feared, the coast is safe tonight.").
		Ending()

	b.Node("village").
		Title("The Village").
		Text("You row home through the swell. Behind you the tower stays dark, and you try not to think about the ships.").
		Ending()

	return b.Build()
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
