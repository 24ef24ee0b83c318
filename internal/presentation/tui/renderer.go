package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders node content as markdown
// using glamour. Story text is plain prose at worst, so rendering is safe
// for any content.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fall back to raw text if the terminal profile cannot be probed.
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
