package dsl

import "github.com/fableworks/fable/pkg/domain"

// NodeBuilder provides a fluent API for configuring a story node.
type NodeBuilder struct {
	node    domain.StoryNode
	builder *Builder
}

// Title sets the node title shown in editors and node lists.
func (n *NodeBuilder) Title(title string) *NodeBuilder {
	n.node.Title = title
	return n
}

// Text sets the markdown content of the node.
func (n *NodeBuilder) Text(content string) *NodeBuilder {
	n.node.Content = content
	return n
}

// Start marks this node as the adventure's entry point.
func (n *NodeBuilder) Start() *NodeBuilder {
	n.node.IsStart = true
	return n
}

// Ending marks this node as terminal. Choices on an ending node are
// kept but never offered during playback.
func (n *NodeBuilder) Ending() *NodeBuilder {
	n.node.IsEnding = true
	return n
}

// Choice adds a choice leading to the target node.
func (n *NodeBuilder) Choice(text, target string) *NodeBuilder {
	n.node.Choices = append(n.node.Choices, domain.Choice{
		Text:         text,
		TargetNodeID: target,
	})
	return n
}
