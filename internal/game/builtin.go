package game

import (
	"fableshell/internal/pattern"
	"fableshell/pkg/fabletypes"
)

// seedBuiltins installs the always-present quit command. It is seeded at
// construction so user registrations land after it.
func (g *Game) seedBuiltins() {
	quit := pattern.MustCompile("quit", pattern.Root)
	g.registry.entries = append(g.registry.entries, entry{
		pattern: quit,
		handler: func(fabletypes.Args) { g.Stop() },
	})
}

// mountHelp inserts the help entries at the highest-priority end: a bare
// "?" shortcut and the full "help" word, in that order. Called when the
// loop starts with help enabled.
func (g *Game) mountHelp() {
	help := pattern.MustCompile("help", pattern.Root)
	handler := func(fabletypes.Args) { g.ShowHelp() }

	g.registry.insertFront(entry{pattern: help, handler: handler})
	g.registry.insertFront(entry{pattern: help.WithAlias("?", "?"), handler: handler})
}

// ShowHelp prints the sorted templates of the commands active in the
// current context.
func (g *Game) ShowHelp() {
	g.printer.Heading("Here is a list of the commands you can give:")
	for _, template := range g.registry.ActiveTemplates(g.context) {
		g.printer.Command(template)
	}
}
