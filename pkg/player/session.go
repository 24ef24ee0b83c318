// Package player walks an adventure graph for read-only play. A session
// operates on its own copy of the adventure and never persists anything.
package player

import (
	"errors"
	"fmt"

	"github.com/fableworks/fable/pkg/domain"
)

var (
	// ErrNoStartNode is returned when play begins on a graph with no node
	// flagged as the starting point. The session is unusable afterwards.
	ErrNoStartNode = errors.New("no starting node found")
	// ErrEnded is returned when a choice is taken on an ending node.
	ErrEnded = errors.New("the adventure has ended")
	// ErrChoiceIndex is returned when the chosen index is out of range.
	ErrChoiceIndex = errors.New("choice index out of range")
	// ErrAtStart is returned when going back with nowhere to go back to.
	ErrAtStart = errors.New("already at the beginning")
)

// MissingTargetError reports a dangling edge: the chosen choice points at a
// node id that does not exist in the adventure. The session stays on the
// current node.
type MissingTargetError struct {
	TargetNodeID string
}

func (e *MissingTargetError) Error() string {
	return fmt.Sprintf("choice target %q does not exist", e.TargetNodeID)
}

// Session is the playback state machine: the node being displayed plus the
// ordered path taken to reach it.
type Session struct {
	adv     *domain.Adventure
	current *domain.StoryNode
	history []*domain.StoryNode
}

// Start begins play at the adventure's starting node.
func Start(adv *domain.Adventure) (*Session, error) {
	cp := adv.Clone()
	start, ok := cp.StartNode()
	if !ok {
		return nil, ErrNoStartNode
	}
	return &Session{
		adv:     cp,
		current: start,
		history: []*domain.StoryNode{start},
	}, nil
}

// Current returns the node being displayed.
func (s *Session) Current() *domain.StoryNode {
	return s.current
}

// History returns the visited nodes in order, ending with the current one.
func (s *Session) History() []*domain.StoryNode {
	return s.history
}

// Ended reports whether the current node terminates the story. An ending
// node's choices are ignored even if present.
func (s *Session) Ended() bool {
	return s.current.IsEnding
}

// Stuck reports a reachable dead end: a non-ending node with no choices.
// This is a content problem worth warning about, not a playback failure.
func (s *Session) Stuck() bool {
	return !s.current.IsEnding && len(s.current.Choices) == 0
}

// Choices returns the selectable choices of the current node: none on an
// ending node, its outgoing edges otherwise.
func (s *Session) Choices() []domain.Choice {
	if s.current.IsEnding {
		return nil
	}
	return s.current.Choices
}

// Choose follows choice index of the current node. On success the target
// becomes the current node and is appended to the history. A dangling target
// leaves the session untouched and reports a MissingTargetError.
func (s *Session) Choose(index int) error {
	if s.current.IsEnding {
		return ErrEnded
	}
	if index < 0 || index >= len(s.current.Choices) {
		return ErrChoiceIndex
	}

	target := s.current.Choices[index].TargetNodeID
	next, ok := s.adv.FindNode(target)
	if !ok {
		return &MissingTargetError{TargetNodeID: target}
	}

	s.current = next
	s.history = append(s.history, next)
	return nil
}

// Back revisits the previous node by popping the history. It refuses at the
// starting entry, so the history never empties.
func (s *Session) Back() error {
	if len(s.history) <= 1 {
		return ErrAtStart
	}
	s.history = s.history[:len(s.history)-1]
	s.current = s.history[len(s.history)-1]
	return nil
}
