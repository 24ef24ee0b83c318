package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/fableworks/fable/pkg/domain"
	"github.com/fableworks/fable/pkg/editor"
	"github.com/fableworks/fable/pkg/player"
)

// runList shows all adventures and dispatches to the editor or the player.
func (a *App) runList(ctx context.Context) (View, error) {
	adventures, err := a.api.ListAdventures(ctx)
	if err != nil {
		a.fail("failed to load adventures", err)
		adventures = nil
	}

	a.printf("\n== Adventures ==\n")
	if len(adventures) == 0 {
		a.printf("(none yet)\n")
	}
	for i, adv := range adventures {
		a.printf("%2d. %s", i+1, adv.Title)
		if adv.Description != "" {
			a.printf(" — %s", adv.Description)
		}
		a.printf("\n")
	}
	a.printf("[N] edit N · play N · new · delete N · quit\n")

	input, err := a.prompt("> ")
	if err != nil {
		return ViewQuit, nil
	}

	cmd, arg, _ := strings.Cut(input, " ")
	switch cmd {
	case "quit", "q", "exit":
		return ViewQuit, nil

	case "new", "n":
		return a.createAdventure(ctx)

	case "play", "p":
		adv, ok := a.pick(adventures, arg)
		if !ok {
			return ViewList, nil
		}
		session, err := player.Start(adv)
		if err != nil {
			// Graph data problem, not a transport error: stay on the list.
			a.printf("Error: %v\n", err)
			return ViewList, nil
		}
		a.session = session
		return ViewPlayer, nil

	case "delete", "d":
		adv, ok := a.pick(adventures, arg)
		if !ok {
			return ViewList, nil
		}
		if err := a.api.DeleteAdventure(ctx, adv.ID); err != nil {
			a.fail("failed to delete adventure", err)
		}
		return ViewList, nil

	case "edit", "e":
		cmd = arg
		fallthrough
	default:
		adv, ok := a.pick(adventures, cmd)
		if !ok {
			return ViewList, nil
		}
		a.draft = editor.NewDraft(adv)
		a.draftID = adv.ID
		return ViewEditor, nil
	}
}

// pick resolves a 1-based list index typed by the user.
func (a *App) pick(adventures []domain.Adventure, arg string) (*domain.Adventure, bool) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 1 || i > len(adventures) {
		a.printf("Unknown selection %q\n", arg)
		return nil, false
	}
	return &adventures[i-1], true
}

func (a *App) createAdventure(ctx context.Context) (View, error) {
	title, err := a.prompt("Title: ")
	if err != nil {
		return ViewQuit, nil
	}
	if title == "" {
		a.printf("A title is required.\n")
		return ViewList, nil
	}
	description, err := a.prompt("Description: ")
	if err != nil {
		return ViewQuit, nil
	}

	created, err := a.api.CreateAdventure(ctx, &domain.Adventure{
		Title:       title,
		Description: description,
	})
	if err != nil {
		a.fail("failed to create adventure", err)
		return ViewList, nil
	}

	// A fresh adventure opens straight in the editor.
	a.draft = editor.NewDraft(created)
	a.draftID = created.ID
	return ViewEditor, nil
}
