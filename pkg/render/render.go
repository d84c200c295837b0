// Package render provides output renderers for snipcheck's patterns.
package render

import "github.com/dkoosis/snipcheck/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}

// Format names an output format.
type Format string

const (
	FormatTerminal Format = "terminal"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
)

// New returns the renderer for format. Unknown formats fall back to text.
func New(format Format, theme Theme, width int) Renderer {
	switch format {
	case FormatTerminal:
		return NewTerminal(theme, width)
	case FormatJSON:
		return NewJSON()
	default:
		return NewText()
	}
}
