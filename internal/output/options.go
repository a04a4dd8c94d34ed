package output

import "io"

// Option is a functional option for configuring Printer instances.
type Option func(*Printer)

// WithStyles configures the printer to use the provided StyleProvider.
// A nil or unavailable provider leaves the printer plain.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		if provider != nil && provider.IsAvailable() {
			p.styleProvider = provider
		}
	}
}

// WithWriter redirects printer output. Default is os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// WithWidth fixes the wrap width for Say instead of detecting the terminal
// size. Tests use this for deterministic wrapping.
func WithWidth(width int) Option {
	return func(p *Printer) {
		p.width = width
	}
}

// PlainText forces plain output regardless of any StyleProvider or terminal
// capability.
func PlainText() Option {
	return func(p *Printer) {
		p.forcePlain = true
	}
}
