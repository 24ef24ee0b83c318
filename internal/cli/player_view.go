package cli

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/fableworks/fable/pkg/domain"
	"github.com/fableworks/fable/pkg/player"
)

// Play runs the player view over a single adventure, outside the studio
// loop, and returns once the reader exits.
func Play(adv *domain.Adventure, logger *slog.Logger, opts ...Option) error {
	a := NewApp(nil, logger, opts...)

	session, err := player.Start(adv)
	if err != nil {
		return err
	}
	a.session = session

	_, err = a.runPlayer()
	return err
}

// runPlayer displays the current node and follows the user's choices until
// they exit. Playback never persists anything.
func (a *App) runPlayer() (View, error) {
	for {
		node := a.session.Current()

		a.printf("\n== %s ==\n", node.Title)
		if node.Content != "" {
			rendered, err := a.render(node.Content)
			if err != nil {
				rendered = node.Content + "\n"
			}
			a.printf("%s", rendered)
		}

		switch {
		case a.session.Ended():
			a.printf("* The End *\n")
			a.printf("[back · exit]\n")
		case a.session.Stuck():
			a.printf("! This node has no choices. Add some in the editor.\n")
			a.printf("[back · exit]\n")
		default:
			for i, c := range a.session.Choices() {
				a.printf("%2d. %s\n", i+1, c.Text)
			}
			a.printf("[N] choose N · back · exit\n")
		}

		input, err := a.prompt("play> ")
		if err != nil {
			return ViewQuit, nil
		}

		switch input {
		case "exit", "x", "quit", "q":
			a.session = nil
			return ViewList, nil

		case "back", "b":
			if err := a.session.Back(); err != nil {
				a.printf("Nothing to go back to.\n")
			}

		default:
			i, convErr := strconv.Atoi(input)
			if convErr != nil {
				a.printf("Unknown command %q\n", input)
				continue
			}
			if err := a.session.Choose(i - 1); err != nil {
				var missing *player.MissingTargetError
				switch {
				case errors.As(err, &missing):
					a.printf("That path leads nowhere: %v\n", missing)
				case errors.Is(err, player.ErrEnded):
					a.printf("The story is over.\n")
				default:
					a.printf("Cannot take that choice: %v\n", err)
				}
			}
		}
	}
}
