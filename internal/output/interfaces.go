// Package output provides the console output system for the engine: a
// Printer with optional injected styling, and the Say helper that wraps
// narrative text to the terminal width. Game and engine code print through
// this package only, so tests can capture everything with a writer override.
package output

// StyleProvider is implemented by styling services (the theme package) to
// supply styled text rendering. The output package depends only on this
// interface, never on a concrete theme.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic SemanticType) TextStyle

	// IsAvailable reports whether the provider is ready to style text.
	// When false the printer falls back to plain text.
	IsAvailable() bool
}

// TextStyle renders text with styling applied. lipgloss.Style satisfies it.
type TextStyle interface {
	Render(text ...string) string
}

// SemanticType labels output with its meaning so themes can style it
// consistently.
type SemanticType string

const (
	// SemanticPlain is unstyled text.
	SemanticPlain SemanticType = "plain"
	// SemanticNarrative is game prose printed through Say.
	SemanticNarrative SemanticType = "narrative"
	// SemanticHeading is a section heading, such as the help list title.
	SemanticHeading SemanticType = "heading"
	// SemanticCommand is a command template shown to the player.
	SemanticCommand SemanticType = "command"
	// SemanticError is an error or "not understood" message.
	SemanticError SemanticType = "error"
)
