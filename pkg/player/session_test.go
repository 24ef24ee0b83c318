package player_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableworks/fable/pkg/domain"
	"github.com/fableworks/fable/pkg/player"
)

func forkAdventure() *domain.Adventure {
	return &domain.Adventure{
		ID:    "adv-1",
		Title: "The Fork",
		Nodes: []domain.StoryNode{
			{
				ID:      "start",
				Title:   "Crossroads",
				IsStart: true,
				Choices: []domain.Choice{
					{Text: "Go left", TargetNodeID: "B"},
					{Text: "Go right", TargetNodeID: "C"},
				},
			},
			{ID: "B", Title: "Left Path", Choices: []domain.Choice{{Text: "Return", TargetNodeID: "start"}}},
			{ID: "C", Title: "Right Path", IsEnding: true, Choices: []domain.Choice{{Text: "Ignored", TargetNodeID: "B"}}},
		},
	}
}

func TestStart(t *testing.T) {
	t.Run("picks the start node", func(t *testing.T) {
		s, err := player.Start(forkAdventure())
		require.NoError(t, err)
		assert.Equal(t, "start", s.Current().ID)
		require.Len(t, s.History(), 1)
		assert.Equal(t, "start", s.History()[0].ID)
	})

	t.Run("no start node is terminal", func(t *testing.T) {
		adv := forkAdventure()
		adv.Nodes[0].IsStart = false
		_, err := player.Start(adv)
		assert.ErrorIs(t, err, player.ErrNoStartNode)
	})

	t.Run("session is isolated from the source", func(t *testing.T) {
		adv := forkAdventure()
		s, err := player.Start(adv)
		require.NoError(t, err)

		adv.Nodes[0].Title = "Mutated"
		assert.Equal(t, "Crossroads", s.Current().Title)
	})
}

func TestChoose(t *testing.T) {
	t.Run("advances and records history", func(t *testing.T) {
		s, err := player.Start(forkAdventure())
		require.NoError(t, err)

		require.NoError(t, s.Choose(0)) // "Go left"
		assert.Equal(t, "B", s.Current().ID)
		require.Len(t, s.History(), 2)
		assert.Equal(t, "start", s.History()[0].ID)
		assert.Equal(t, "B", s.History()[1].ID)
	})

	t.Run("dangling target leaves state untouched", func(t *testing.T) {
		adv := forkAdventure()
		adv.Nodes[0].Choices[0].TargetNodeID = "nowhere"
		s, err := player.Start(adv)
		require.NoError(t, err)

		err = s.Choose(0)
		var missing *player.MissingTargetError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "nowhere", missing.TargetNodeID)
		assert.Equal(t, "start", s.Current().ID)
		assert.Len(t, s.History(), 1)
	})

	t.Run("out of range index", func(t *testing.T) {
		s, err := player.Start(forkAdventure())
		require.NoError(t, err)
		assert.ErrorIs(t, s.Choose(2), player.ErrChoiceIndex)
		assert.ErrorIs(t, s.Choose(-1), player.ErrChoiceIndex)
	})

	t.Run("ending node suppresses its choices", func(t *testing.T) {
		s, err := player.Start(forkAdventure())
		require.NoError(t, err)

		require.NoError(t, s.Choose(1)) // "Go right" -> ending
		assert.True(t, s.Ended())
		assert.Empty(t, s.Choices(), "ending node must not offer choices")
		assert.ErrorIs(t, s.Choose(0), player.ErrEnded)
	})
}

func TestBack(t *testing.T) {
	s, err := player.Start(forkAdventure())
	require.NoError(t, err)

	require.NoError(t, s.Choose(0))
	require.Len(t, s.History(), 2)

	require.NoError(t, s.Back())
	assert.Equal(t, "start", s.Current().ID)
	require.Len(t, s.History(), 1)

	assert.ErrorIs(t, s.Back(), player.ErrAtStart, "back at the beginning is refused")
	assert.Len(t, s.History(), 1)
}

func TestStuck(t *testing.T) {
	adv := &domain.Adventure{
		Title: "Dead End",
		Nodes: []domain.StoryNode{
			{ID: "start", Title: "Only Room", IsStart: true, Choices: []domain.Choice{}},
		},
	}
	s, err := player.Start(adv)
	require.NoError(t, err)
	assert.True(t, s.Stuck())
	assert.False(t, s.Ended())
}
