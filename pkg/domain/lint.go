package domain

import "fmt"

// Lint reports advisory problems in the story graph. None of these block a
// save or a play attempt: a missing start node fails only when play begins,
// and dangling targets fail only when chosen.
func (a *Adventure) Lint() []string {
	var warnings []string

	if _, ok := a.StartNode(); !ok && len(a.Nodes) > 0 {
		warnings = append(warnings, "no starting node: mark one node as the start")
	}

	for _, n := range a.Nodes {
		for _, c := range n.Choices {
			if _, ok := a.FindNode(c.TargetNodeID); !ok {
				warnings = append(warnings, fmt.Sprintf("node %q: choice %q points to missing node %q", n.Title, c.Text, c.TargetNodeID))
			}
		}
		if !n.IsEnding && len(n.Choices) == 0 {
			warnings = append(warnings, fmt.Sprintf("node %q has no choices and is not an ending", n.Title))
		}
	}

	return warnings
}
