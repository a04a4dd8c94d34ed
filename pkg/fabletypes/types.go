// Package fabletypes defines the core types shared between the pattern
// engine, the game loop, and embedding programs. It contains only
// declarations so that both internal packages and game code can depend on it
// without import cycles.
package fabletypes

// Args holds the named arguments passed to a command handler: placeholder
// captures from the matched input merged with the fixed keywords declared at
// registration time.
type Args map[string]string

// Get returns the value bound to name, or the empty string when absent.
func (a Args) Get(name string) string {
	return a[name]
}

// Clone returns an independent copy of the argument map.
func (a Args) Clone() Args {
	out := make(Args, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// HandlerFunc is the signature for command handlers. The args map contains
// exactly the parameter names declared when the command was registered.
type HandlerFunc func(args Args)

// CommandInfo describes a registered command for help and introspection.
type CommandInfo struct {
	Template string
	Context  string
	Params   []string
}
