package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableworks/fable/pkg/domain"
	"github.com/fableworks/fable/pkg/editor"
)

func TestDraft_FirstNodeIsStart(t *testing.T) {
	d := editor.NewDraft(&domain.Adventure{Title: "Fresh"})

	first := d.AddNode()
	assert.True(t, first.IsStart)
	assert.Equal(t, "New Node", first.Title)
	assert.NotEmpty(t, first.ID)

	second := d.AddNode()
	assert.False(t, second.IsStart)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, d.Dirty())
}

func TestDraft_DoesNotAliasSource(t *testing.T) {
	src := &domain.Adventure{
		Title: "Source",
		Nodes: []domain.StoryNode{{ID: "a", Title: "A", IsStart: true}},
	}
	d := editor.NewDraft(src)

	require.NoError(t, d.UpdateNode("a", map[string]any{"title": "Edited"}))
	d.AddNode()

	assert.Equal(t, "A", src.Nodes[0].Title, "edits must stay in the working copy")
	assert.Len(t, src.Nodes, 1)
}

func TestDraft_UpdateNode(t *testing.T) {
	d := editor.NewDraft(&domain.Adventure{Title: "Edit"})
	node := d.AddNode()

	err := d.UpdateNode(node.ID, map[string]any{
		"title":    "Cavern",
		"content":  "Drips echo in the dark.",
		"isEnding": true,
	})
	require.NoError(t, err)

	got, ok := d.Adventure().FindNode(node.ID)
	require.True(t, ok)
	assert.Equal(t, "Cavern", got.Title)
	assert.Equal(t, "Drips echo in the dark.", got.Content)
	assert.True(t, got.IsEnding)
	assert.True(t, got.IsStart, "field absent from the update keeps its value")

	assert.ErrorIs(t, d.UpdateNode("missing", map[string]any{"title": "x"}), editor.ErrNodeNotFound)
}

func TestDraft_Choices(t *testing.T) {
	d := editor.NewDraft(&domain.Adventure{Title: "Choices"})
	a := d.AddNode()
	b := d.AddNode()

	t.Run("add", func(t *testing.T) {
		require.NoError(t, d.AddChoice(a.ID, "Go on", b.ID))
		node, _ := d.Adventure().FindNode(a.ID)
		require.Len(t, node.Choices, 1)
		assert.Equal(t, b.ID, node.Choices[0].TargetNodeID)
	})

	t.Run("empty text or target rejected", func(t *testing.T) {
		assert.ErrorIs(t, d.AddChoice(a.ID, "", b.ID), editor.ErrEmptyChoice)
		assert.ErrorIs(t, d.AddChoice(a.ID, "Somewhere", ""), editor.ErrEmptyChoice)
		node, _ := d.Adventure().FindNode(a.ID)
		assert.Len(t, node.Choices, 1, "rejected choices must not be appended")
	})

	t.Run("update in place", func(t *testing.T) {
		require.NoError(t, d.UpdateChoice(a.ID, 0, map[string]any{"text": "Press forward"}))
		node, _ := d.Adventure().FindNode(a.ID)
		assert.Equal(t, "Press forward", node.Choices[0].Text)
		assert.Equal(t, b.ID, node.Choices[0].TargetNodeID, "field absent from the update keeps its value")
	})

	t.Run("out of range is explicit", func(t *testing.T) {
		assert.ErrorIs(t, d.UpdateChoice(a.ID, 5, map[string]any{"text": "x"}), editor.ErrChoiceIndex)
		assert.ErrorIs(t, d.DeleteChoice(a.ID, -1), editor.ErrChoiceIndex)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, d.DeleteChoice(a.ID, 0))
		node, _ := d.Adventure().FindNode(a.ID)
		assert.Len(t, node.Choices, 0)
	})
}

func TestDraft_SaveLifecycle(t *testing.T) {
	d := editor.NewDraft(&domain.Adventure{Title: "Save"})
	assert.False(t, d.Dirty())

	d.AddNode()
	assert.True(t, d.Dirty())

	d.MarkSaved()
	assert.False(t, d.Dirty())
}
