package game

import (
	"io"
	"strings"

	"github.com/google/uuid"

	"fableshell/internal/logger"
	"fableshell/internal/output"
	"fableshell/internal/pattern"
)

// Game is an interactive fiction session: it owns the command registry, the
// current context, and the output printer, and runs the dispatch loop. All
// state is per-instance; nothing is shared between Games.
//
// A Game is single-threaded: handlers run to completion on the loop
// goroutine before the next line is read, and the context and registry are
// only written between dispatches.
type Game struct {
	id        string
	registry  *Registry
	context   string // qualified current context
	printer   *output.Printer
	prompt    func() string
	unmatched func(raw string)
	helpOn    bool
	input     io.Reader // nil means interactive readline on stdin
	running   bool
}

// Option configures a Game.
type Option func(*Game)

// WithPrinter sets the output printer the game and its built-ins write to.
func WithPrinter(p *output.Printer) Option {
	return func(g *Game) {
		if p != nil {
			g.printer = p
		}
	}
}

// WithPrompt sets the function called before each read to produce the
// prompt text. The default returns "> ".
func WithPrompt(fn func() string) Option {
	return func(g *Game) {
		if fn != nil {
			g.prompt = fn
		}
	}
}

// WithStaticPrompt sets a constant prompt string.
func WithStaticPrompt(prompt string) Option {
	return WithPrompt(func() string { return prompt })
}

// WithUnmatched sets the collaborator invoked once for every non-empty line
// that matches no registered command. It receives the raw line and must not
// fail. The default prints "I don't understand '<line>'.".
func WithUnmatched(fn func(raw string)) Option {
	return func(g *Game) {
		if fn != nil {
			g.unmatched = fn
		}
	}
}

// WithHelp controls whether the "?" and "help" built-ins are mounted ahead
// of all other commands when the loop starts. Enabled by default.
func WithHelp(enabled bool) Option {
	return func(g *Game) {
		g.helpOn = enabled
	}
}

// WithInput reads lines from r instead of an interactive terminal. Used by
// tests and batch embedding; no prompt is displayed.
func WithInput(r io.Reader) Option {
	return func(g *Game) {
		g.input = r
	}
}

// New creates a Game in the root context with the built-in quit command
// pre-seeded.
func New(opts ...Option) *Game {
	g := &Game{
		id:       uuid.NewString(),
		registry: NewRegistry(),
		context:  pattern.Root,
		helpOn:   true,
	}
	g.printer = output.NewPrinter()
	g.prompt = func() string { return "> " }
	g.unmatched = func(raw string) {
		g.printer.Printf("I don't understand '%s'.\n", raw)
	}

	for _, opt := range opts {
		opt(g)
	}

	g.seedBuiltins()
	return g
}

// Register adds a command to the session's registry. All registrations must
// happen before Run; afterwards they fail with ErrRegistryFrozen.
func (g *Game) Register(cmd Command) error {
	return g.registry.Register(cmd)
}

// MustRegister is Register that panics on error, for game setup code where
// a bad template is a programming error to surface immediately.
func (g *Game) MustRegister(cmd Command) {
	if err := g.registry.Register(cmd); err != nil {
		panic(err)
	}
}

// SetContext switches the session to the given context, qualified under the
// root. The switch is absolute and takes effect on the next dispatch; there
// is no stack to pop. An empty name switches to the root.
func (g *Game) SetContext(context string) {
	if context == "" {
		context = pattern.Root
	}
	g.context = pattern.Qualify(context)
	logger.Debug("Context switched", "session", g.id, "context", g.context)
}

// Context returns the qualified current context.
func (g *Game) Context() string {
	return g.context
}

// Printer returns the game's output printer so handlers can Say and print
// through the same styled destination.
func (g *Game) Printer() *output.Printer {
	return g.printer
}

// Say prints narrative text through the game's printer.
func (g *Game) Say(msg string) {
	g.printer.Say(msg)
}

// Stop ends the dispatch loop after the current handler returns.
func (g *Game) Stop() {
	g.running = false
}

// Dispatch tokenizes a raw input line and invokes the first matching
// command's handler with the captured arguments merged over the command's
// fixed keywords. A line matching nothing is routed to the unmatched
// collaborator; that is a normal outcome, not an error.
func (g *Game) Dispatch(raw string) error {
	words := strings.Fields(strings.ToLower(raw))
	if len(words) == 0 {
		return nil
	}

	for _, e := range g.registry.entries {
		captured, ok, err := e.pattern.Match(words, g.context)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		args := e.fixed.Clone()
		for k, v := range captured {
			args[k] = v
		}
		logger.Debug("Dispatching", "session", g.id, "pattern", e.pattern.Text(), "args", args)
		e.handler(args)
		return nil
	}

	g.unmatched(raw)
	return nil
}
