package domain

// AdventurePatch carries the fields of a partial update. A nil field keeps
// the stored value; a present field replaces it wholesale. This mirrors the
// PUT semantics of the API: per-field replace, no deep merge of nodes.
type AdventurePatch struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Nodes       *[]StoryNode `json:"nodes"`
}

// Apply merges the patch into adv, leaving absent fields untouched.
func (p *AdventurePatch) Apply(adv *Adventure) {
	if p.Title != nil {
		adv.Title = *p.Title
	}
	if p.Description != nil {
		adv.Description = *p.Description
	}
	if p.Nodes != nil {
		adv.Nodes = *p.Nodes
	}
	adv.Normalize()
}
