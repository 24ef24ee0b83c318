package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleStory(t *testing.T) {
	b := New("The Cave").Describe("A short spelunking trip.")

	b.Node("entrance").
		Title("The Entrance").
		Text("A dark cave mouth yawns before you.").
		Start().
		Choice("Step inside", "hall").
		Choice("Walk away", "home")

	b.Node("hall").
		Title("The Hall").
		Text("Your torch gutters out.").
		Ending()

	b.Node("home").
		Title("Home Again").
		Text("Some adventures are best left untaken.").
		Ending()

	adv, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "The Cave", adv.Title)
	assert.Equal(t, "A short spelunking trip.", adv.Description)
	require.Len(t, adv.Nodes, 3)

	start, ok := adv.StartNode()
	require.True(t, ok)
	assert.Equal(t, "entrance", start.ID)
	require.Len(t, start.Choices, 2)
	assert.Equal(t, "hall", start.Choices[0].TargetNodeID)

	hall, ok := adv.FindNode("hall")
	require.True(t, ok)
	assert.True(t, hall.IsEnding)
	assert.NotNil(t, hall.Choices, "Normalize should leave no nil slices")
}

func TestBuilder_FirstNodeDefaultsToStart(t *testing.T) {
	b := New("One Room")
	b.Node("room").Text("Four walls.")
	b.Node("closet").Text("A closet.")

	adv, err := b.Build()
	require.NoError(t, err)

	start, ok := adv.StartNode()
	require.True(t, ok)
	assert.Equal(t, "room", start.ID)
	assert.False(t, adv.Nodes[1].IsStart)
}

func TestBuilder_NodeReturnsExisting(t *testing.T) {
	b := New("Loop")
	first := b.Node("a").Title("First")
	again := b.Node("a")

	assert.Same(t, first, again)

	adv, err := b.Build()
	require.NoError(t, err)
	require.Len(t, adv.Nodes, 1)
	assert.Equal(t, "First", adv.Nodes[0].Title)
}

func TestBuilder_DanglingTarget(t *testing.T) {
	b := New("Broken")
	b.Node("a").Choice("jump", "nowhere")

	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nowhere")
}

func TestBuilder_Empty(t *testing.T) {
	_, err := New("Empty").Build()
	require.Error(t, err)
}
