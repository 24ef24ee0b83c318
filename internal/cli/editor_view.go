package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/fableworks/fable/pkg/editor"
)

// runEditor drives the working copy. Nothing here touches the network until
// the user saves; cancel discards the draft entirely.
func (a *App) runEditor(ctx context.Context) (View, error) {
	adv := a.draft.Adventure()

	a.printf("\n== Editing: %s ==\n", adv.Title)
	for i, n := range adv.Nodes {
		marker := ""
		if n.IsStart {
			marker += " (start)"
		}
		if n.IsEnding {
			marker += " (end)"
		}
		a.printf("%2d. %s%s — %d choice(s)\n", i+1, n.Title, marker, len(n.Choices))
	}
	if len(adv.Nodes) == 0 {
		a.printf("(no nodes yet — the first node you add becomes the start)\n")
	}
	for _, warning := range a.draft.Lint() {
		a.printf("  ~ %s\n", warning)
	}
	a.printf("[N] edit node N · add · save · cancel\n")

	input, err := a.prompt("editor> ")
	if err != nil {
		return ViewQuit, nil
	}

	switch input {
	case "add", "a":
		node := a.draft.AddNode()
		a.printf("Added %q\n", node.Title)
		return ViewEditor, nil

	case "save", "s":
		if _, err := a.api.UpdateAdventure(ctx, a.draftID, a.draft.Adventure()); err != nil {
			a.fail("failed to save adventure", err)
			return ViewEditor, nil
		}
		a.draft.MarkSaved()
		a.draft = nil
		a.draftID = ""
		return ViewList, nil

	case "cancel", "c":
		if a.draft.Dirty() {
			a.printf("Unsaved changes discarded.\n")
		}
		a.draft = nil
		a.draftID = ""
		return ViewList, nil

	default:
		i, err := strconv.Atoi(input)
		if err != nil || i < 1 || i > len(adv.Nodes) {
			a.printf("Unknown selection %q\n", input)
			return ViewEditor, nil
		}
		return a.editNode(adv.Nodes[i-1].ID)
	}
}

// editNode is the per-node sub-loop: fields, flags, and choices.
func (a *App) editNode(nodeID string) (View, error) {
	for {
		adv := a.draft.Adventure()
		node, ok := adv.FindNode(nodeID)
		if !ok {
			return ViewEditor, nil
		}

		a.printf("\n-- %s --\n", node.Title)
		if node.Content != "" {
			a.printf("%s\n", node.Content)
		}
		for i, c := range node.Choices {
			target := c.TargetNodeID
			if t, ok := adv.FindNode(target); ok {
				target = t.Title
			} else {
				target += " (missing!)"
			}
			a.printf("%2d. %s -> %s\n", i+1, c.Text, target)
		}
		a.printf("title · content · start · ending · choice · drop N · done\n")

		input, err := a.prompt("node> ")
		if err != nil {
			return ViewQuit, nil
		}
		cmd, arg, _ := strings.Cut(input, " ")

		switch cmd {
		case "done", "d", "":
			return ViewEditor, nil

		case "title", "t":
			title, err := a.prompt("New title: ")
			if err != nil {
				return ViewQuit, nil
			}
			a.applyNodeEdit(nodeID, map[string]any{"title": title})

		case "content", "c":
			content, err := a.prompt("New content (markdown): ")
			if err != nil {
				return ViewQuit, nil
			}
			a.applyNodeEdit(nodeID, map[string]any{"content": content})

		case "start":
			a.applyNodeEdit(nodeID, map[string]any{"isStart": !node.IsStart})

		case "ending", "end":
			a.applyNodeEdit(nodeID, map[string]any{"isEnding": !node.IsEnding})

		case "choice":
			a.addChoice(nodeID)

		case "drop":
			i, convErr := strconv.Atoi(arg)
			if convErr != nil {
				a.printf("Usage: drop N\n")
				continue
			}
			if err := a.draft.DeleteChoice(nodeID, i-1); err != nil {
				a.printf("Cannot drop choice: %v\n", err)
			}

		default:
			a.printf("Unknown command %q\n", input)
		}
	}
}

func (a *App) applyNodeEdit(nodeID string, fields map[string]any) {
	if err := a.draft.UpdateNode(nodeID, fields); err != nil {
		a.printf("Cannot update node: %v\n", err)
	}
}

func (a *App) addChoice(nodeID string) {
	text, err := a.prompt("Choice text: ")
	if err != nil {
		return
	}

	adv := a.draft.Adventure()
	a.printf("Targets:\n")
	for i, n := range adv.Nodes {
		if n.ID != nodeID {
			a.printf("%2d. %s\n", i+1, n.Title)
		}
	}
	targetArg, err := a.prompt("Target node number: ")
	if err != nil {
		return
	}
	i, convErr := strconv.Atoi(targetArg)
	if convErr != nil || i < 1 || i > len(adv.Nodes) {
		a.printf("Unknown target %q\n", targetArg)
		return
	}

	if err := a.draft.AddChoice(nodeID, text, adv.Nodes[i-1].ID); err != nil {
		if errors.Is(err, editor.ErrEmptyChoice) {
			a.printf("Choice needs both text and a target.\n")
			return
		}
		a.printf("Cannot add choice: %v\n", err)
	}
}
