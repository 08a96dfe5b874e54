package styles

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// rendererKey identifies a cached renderer by wrap width and style name
type rendererKey struct {
	width int
	style string
}

// Cache glamour renderers to avoid expensive re-creation
var rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer

// getRenderer returns a cached markdown renderer for the given width and style
func getRenderer(width int, style string) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, style: style}

	// Check cache first
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(width),
	}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}

	// Store in cache
	rendererCache.Store(key, renderer)
	return renderer, nil
}

// RenderNotes renders markdown project notes for terminal display.
// Falls back to the raw text if rendering fails, and shows a subtle
// placeholder when there are no notes.
func RenderNotes(notes string, width int, style string) string {
	if notes == "" {
		return SubtitleStyle.Render("No notes")
	}

	renderer, err := getRenderer(width, style)
	if err != nil {
		return notes
	}

	rendered, err := renderer.Render(notes)
	if err != nil {
		return notes
	}
	return strings.TrimSpace(rendered)
}
