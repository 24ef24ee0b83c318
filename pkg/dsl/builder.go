package dsl

import (
	"fmt"

	"github.com/fableworks/fable/pkg/domain"
)

// Builder manages the construction of an adventure graph.
type Builder struct {
	adv   domain.Adventure
	nodes map[string]*NodeBuilder
	order []string
}

// New creates a builder for an adventure with the given title.
func New(title string) *Builder {
	return &Builder{
		adv:   domain.Adventure{Title: title},
		nodes: make(map[string]*NodeBuilder),
	}
}

// Describe sets the adventure description.
func (b *Builder) Describe(description string) *Builder {
	b.adv.Description = description
	return b
}

// Node creates a new node in the graph.
// If the node already exists, it returns the existing builder.
func (b *Builder) Node(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{
		node: domain.StoryNode{
			ID:    id,
			Title: id,
		},
		builder: b,
	}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

// Build compiles the graph into an Adventure.
// Every choice must target a node defined on this builder, and the
// first node added becomes the start node when none was marked.
func (b *Builder) Build() (*domain.Adventure, error) {
	if len(b.order) == 0 {
		return nil, fmt.Errorf("adventure %q has no nodes", b.adv.Title)
	}

	adv := b.adv
	adv.Nodes = make([]domain.StoryNode, 0, len(b.order))

	hasStart := false
	for _, id := range b.order {
		node := b.nodes[id].node
		for _, c := range node.Choices {
			if _, ok := b.nodes[c.TargetNodeID]; !ok {
				return nil, fmt.Errorf("node %q: choice %q targets unknown node %q", id, c.Text, c.TargetNodeID)
			}
		}
		hasStart = hasStart || node.IsStart
		adv.Nodes = append(adv.Nodes, node)
	}
	if !hasStart {
		adv.Nodes[0].IsStart = true
	}

	adv.Normalize()
	return &adv, nil
}
