// Package editor holds the client-side working copy of one adventure during
// editing. All operations are local mutations; nothing touches the network
// until the caller explicitly saves through the API client.
package editor

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"github.com/fableworks/fable/pkg/domain"
)

var (
	// ErrNodeNotFound is returned when an edit targets an unknown node id.
	ErrNodeNotFound = errors.New("node not found in working copy")
	// ErrEmptyChoice is returned when a choice is added without a label or target.
	ErrEmptyChoice = errors.New("choice needs both text and a target node")
	// ErrChoiceIndex is returned when a choice index is out of range.
	ErrChoiceIndex = errors.New("choice index out of range")
)

// Draft is the mutable working copy of an adventure. It deep-copies the
// source on open, so discarding a draft never leaks edits back.
type Draft struct {
	adv   *domain.Adventure
	dirty bool
}

// NewDraft opens a working copy of adv.
func NewDraft(adv *domain.Adventure) *Draft {
	cp := adv.Clone()
	cp.Normalize()
	return &Draft{adv: cp}
}

// Adventure returns the current working copy.
func (d *Draft) Adventure() *domain.Adventure {
	return d.adv
}

// Dirty reports whether the draft has unsaved edits.
func (d *Draft) Dirty() bool {
	return d.dirty
}

// MarkSaved clears the dirty flag after a successful save.
func (d *Draft) MarkSaved() {
	d.dirty = false
}

// AddNode appends a new node with a generated id and default title. The
// first node of an empty adventure automatically becomes the starting point.
func (d *Draft) AddNode() *domain.StoryNode {
	node := domain.StoryNode{
		ID:      uuid.NewString(),
		Title:   "New Node",
		Choices: []domain.Choice{},
		IsStart: len(d.adv.Nodes) == 0,
	}
	d.adv.Nodes = append(d.adv.Nodes, node)
	d.dirty = true
	return &d.adv.Nodes[len(d.adv.Nodes)-1]
}

// UpdateNode merges the given fields into the identified node. Field names
// follow the wire format (title, content, isStart, isEnding, choices);
// fields absent from the map keep their current value.
func (d *Draft) UpdateNode(nodeID string, fields map[string]any) error {
	node, ok := d.adv.FindNode(nodeID)
	if !ok {
		return ErrNodeNotFound
	}
	if err := mapstructure.Decode(fields, node); err != nil {
		return fmt.Errorf("failed to apply node fields: %w", err)
	}
	d.dirty = true
	return nil
}

// AddChoice appends a choice to the identified node.
func (d *Draft) AddChoice(nodeID, text, targetNodeID string) error {
	if text == "" || targetNodeID == "" {
		return ErrEmptyChoice
	}
	node, ok := d.adv.FindNode(nodeID)
	if !ok {
		return ErrNodeNotFound
	}
	node.Choices = append(node.Choices, domain.Choice{Text: text, TargetNodeID: targetNodeID})
	d.dirty = true
	return nil
}

// UpdateChoice merges the given fields (text, targetNodeId) into the choice
// at the given position.
func (d *Draft) UpdateChoice(nodeID string, index int, fields map[string]any) error {
	node, ok := d.adv.FindNode(nodeID)
	if !ok {
		return ErrNodeNotFound
	}
	if index < 0 || index >= len(node.Choices) {
		return ErrChoiceIndex
	}
	if err := mapstructure.Decode(fields, &node.Choices[index]); err != nil {
		return fmt.Errorf("failed to apply choice fields: %w", err)
	}
	d.dirty = true
	return nil
}

// DeleteChoice removes the choice at the given position.
func (d *Draft) DeleteChoice(nodeID string, index int) error {
	node, ok := d.adv.FindNode(nodeID)
	if !ok {
		return ErrNodeNotFound
	}
	if index < 0 || index >= len(node.Choices) {
		return ErrChoiceIndex
	}
	node.Choices = append(node.Choices[:index], node.Choices[index+1:]...)
	d.dirty = true
	return nil
}

// Lint surfaces the advisory graph warnings for the current copy.
func (d *Draft) Lint() []string {
	return d.adv.Lint()
}
