package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Printer writes engine and game output, applying styles when a
// StyleProvider is configured and the terminal supports color.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	forcePlain    bool
	width         int // fixed wrap width; 0 means detect from terminal
}

// NewPrinter creates a Printer with the given options. By default it writes
// to os.Stdout, unstyled, wrapping to the detected terminal width.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Print outputs text without styling or a trailing newline.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Printf outputs formatted text without styling.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println outputs text followed by a newline.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Heading outputs a line with heading styling.
func (p *Printer) Heading(text string) {
	p.output(SemanticHeading, text, true)
}

// Command outputs a command template line with command styling.
func (p *Printer) Command(text string) {
	p.output(SemanticCommand, text, true)
}

// Error outputs an error message with error styling.
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	var rendered string
	if p.stylable() {
		rendered = p.styleProvider.GetStyle(semantic).Render(text)
	} else {
		rendered = text
	}
	if addNewline && !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}
	_, _ = fmt.Fprint(p.writer, rendered)
}

func (p *Printer) stylable() bool {
	if p.forcePlain || p.styleProvider == nil || !p.styleProvider.IsAvailable() {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// SetWriter redirects output, for tests and embedding.
func (p *Printer) SetWriter(writer io.Writer) {
	p.writer = writer
}

// Width returns the wrap width for narrative text: the configured fixed
// width when set, otherwise the terminal width, otherwise 80.
func (p *Printer) Width() int {
	if p.width > 0 {
		return p.width
	}
	if f, ok := p.writer.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}
