package domain

import "time"

// Choice is a labeled directed edge from its owning node to another node.
// The target is referenced by id only; nothing enforces that it exists, so a
// dangling choice is legal data that surfaces at play time.
type Choice struct {
	Text         string `json:"text" yaml:"text" validate:"required"`
	TargetNodeID string `json:"targetNodeId" yaml:"target" validate:"required"`
}

// StoryNode is one page of an adventure: narrative content plus its outgoing
// choices. Choice order is display order.
type StoryNode struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title" validate:"required"`
	Content  string   `json:"content" yaml:"content"`
	Choices  []Choice `json:"choices" yaml:"choices,omitempty" validate:"dive"`
	IsStart  bool     `json:"isStart" yaml:"is_start,omitempty"`
	IsEnding bool     `json:"isEnding" yaml:"is_ending,omitempty"`
}

// Adventure is the root aggregate: a complete branching story. Nodes have no
// identity or lifecycle outside their owning adventure.
type Adventure struct {
	ID          string      `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string      `json:"title" yaml:"title" validate:"required"`
	Description string      `json:"description" yaml:"description,omitempty"`
	Nodes       []StoryNode `json:"nodes" yaml:"nodes" validate:"dive"`
	CreatedAt   time.Time   `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   time.Time   `json:"updatedAt,omitempty" yaml:"updated_at,omitempty"`
}

// Normalize fills in defaults so the wire representation never carries null
// collections: an adventure always has a (possibly empty) node list, and every
// node a (possibly empty) choice list.
func (a *Adventure) Normalize() {
	if a.Nodes == nil {
		a.Nodes = []StoryNode{}
	}
	for i := range a.Nodes {
		if a.Nodes[i].Choices == nil {
			a.Nodes[i].Choices = []Choice{}
		}
	}
}

// Touch refreshes UpdatedAt. Stores call it on every persisted write.
func (a *Adventure) Touch(now time.Time) {
	a.UpdatedAt = now
}

// Clone returns a deep copy, so working copies and playback sessions can
// mutate freely without aliasing the stored document.
func (a *Adventure) Clone() *Adventure {
	cp := *a
	cp.Nodes = make([]StoryNode, len(a.Nodes))
	for i, n := range a.Nodes {
		cp.Nodes[i] = n
		cp.Nodes[i].Choices = make([]Choice, len(n.Choices))
		copy(cp.Nodes[i].Choices, n.Choices)
	}
	return &cp
}

// FindNode looks up a node by id within this adventure.
func (a *Adventure) FindNode(id string) (*StoryNode, bool) {
	for i := range a.Nodes {
		if a.Nodes[i].ID == id {
			return &a.Nodes[i], true
		}
	}
	return nil, false
}

// StartNode returns the first node flagged as the starting point.
func (a *Adventure) StartNode() (*StoryNode, bool) {
	for i := range a.Nodes {
		if a.Nodes[i].IsStart {
			return &a.Nodes[i], true
		}
	}
	return nil, false
}
