// Package game ties the pattern engine together into a playable session: an
// ordered command registry validated at registration time, a dispatcher that
// routes tokenized input lines to the first matching handler, and a blocking
// read-line loop with built-in quit and help commands.
package game

import (
	"fmt"
	"sort"
	"strings"

	"fableshell/internal/pattern"
	"fableshell/pkg/fabletypes"
)

// Command describes one command registration. Params is the explicit
// declaration of the handler's parameter names; it must equal the union of
// the template's placeholder names and the Fixed keys.
type Command struct {
	Template string
	Context  string // scoping context; empty means the root context
	Params   []string
	Fixed    fabletypes.Args // fixed keyword values merged into every call
	Handler  fabletypes.HandlerFunc
}

// entry is a compiled registry slot.
type entry struct {
	pattern *pattern.Pattern
	handler fabletypes.HandlerFunc
	fixed   fabletypes.Args
}

// Registry is the ordered collection of command entries consulted at
// dispatch time. Earlier entries have higher priority. Registrations are
// refused once the registry is frozen.
type Registry struct {
	entries []entry
	frozen  bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register compiles the command's template, validates the declared
// parameters, and appends the command at the lowest-priority end.
func (r *Registry) Register(cmd Command) error {
	if r.frozen {
		return fmt.Errorf("%w: cannot register %q after the game has started", fabletypes.ErrRegistryFrozen, cmd.Template)
	}
	if cmd.Handler == nil {
		return fmt.Errorf("command %q has no handler", cmd.Template)
	}

	context := cmd.Context
	if context == "" {
		context = pattern.Root
	}
	p, err := pattern.Compile(cmd.Template, context)
	if err != nil {
		return err
	}

	if err := checkSignature(p, cmd); err != nil {
		return err
	}

	r.entries = append(r.entries, entry{
		pattern: p,
		handler: cmd.Handler,
		fixed:   cmd.Fixed.Clone(),
	})
	return nil
}

// checkSignature verifies that the declared parameter names equal, as a
// set, the pattern's argument names plus the fixed keyword names.
func checkSignature(p *pattern.Pattern, cmd Command) error {
	expected := make(map[string]bool)
	for _, name := range p.ArgNames() {
		expected[name] = true
	}
	for name := range cmd.Fixed {
		expected[name] = true
	}

	declared := make(map[string]bool)
	for _, name := range cmd.Params {
		declared[name] = true
	}

	if len(declared) == len(expected) {
		same := true
		for name := range expected {
			if !declared[name] {
				same = false
				break
			}
		}
		if same {
			return nil
		}
	}

	// Report the expected list in a stable order: placeholder names in
	// pattern order, then fixed keywords sorted.
	want := p.ArgNames()
	var fixedNames []string
	for name := range cmd.Fixed {
		fixedNames = append(fixedNames, name)
	}
	sort.Strings(fixedNames)
	want = append(want, fixedNames...)

	return fmt.Errorf("%w: command %q declares parameters (%s); they should be (%s)",
		fabletypes.ErrSignatureMismatch, cmd.Template,
		strings.Join(cmd.Params, ", "), strings.Join(want, ", "))
}

// Freeze stops further registrations. Called when the dispatch loop starts.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether the registry has been frozen.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// insertFront places an entry ahead of everything already registered. The
// engine uses it to give the help entries top dispatch priority.
func (r *Registry) insertFront(e entry) {
	r.entries = append([]entry{e}, r.entries...)
}

// ActiveTemplates returns the sorted original template texts of entries
// active under the given current context.
func (r *Registry) ActiveTemplates(current string) []string {
	var out []string
	for _, e := range r.entries {
		active, err := e.pattern.ActiveIn(current)
		if err == nil && active {
			out = append(out, e.pattern.Text())
		}
	}
	sort.Strings(out)
	return out
}

// Commands returns registration metadata for introspection.
func (r *Registry) Commands() []fabletypes.CommandInfo {
	out := make([]fabletypes.CommandInfo, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, fabletypes.CommandInfo{
			Template: e.pattern.Text(),
			Context:  e.pattern.Context(),
			Params:   e.pattern.ArgNames(),
		})
	}
	return out
}
