// Package pattern implements the command template engine: compiling textual
// templates such as "put ITEM in CONTAINER" into Patterns, deciding whether
// a Pattern is active under the session's current context, and matching
// tokenized input lines against a Pattern to capture named arguments.
package pattern

import (
	"fmt"
	"strings"

	"fableshell/pkg/fabletypes"
)

// Root is the reserved root segment of the context hierarchy. A session
// starts in this context and every non-root context is qualified under it.
const Root = "default"

// token is one compiled word of a template: either a literal word or a
// placeholder whose word field holds the lowercased argument name.
type token struct {
	word        string
	placeholder bool
}

// Pattern is an immutable compiled command template. The zero value is not
// usable; obtain Patterns through Compile.
type Pattern struct {
	text         string
	context      string // "" means none: never active
	prefix       []string
	rest         []token // tokens after the prefix
	placeholders int
	fixed        int // literal tokens in rest
	argNames     []string
}

// Compile parses a command template into a Pattern. Each whitespace-separated
// word must be either all lowercase letters (a literal) or all uppercase
// letters (a placeholder capturing one or more input words under the
// lowercased name). Any other word form fails with ErrMalformedPattern.
//
// context scopes the pattern; pass Root for a globally active command or ""
// for a pattern that is never active (reserved for synthetic entries).
// Compile is pure: the same template always yields an identical Pattern.
func Compile(template, context string) (*Pattern, error) {
	words := strings.Fields(template)

	p := &Pattern{
		text:    template,
		context: context,
	}

	var tokens []token
	seen := make(map[string]bool)
	for _, w := range words {
		switch {
		case isLowerWord(w):
			tokens = append(tokens, token{word: w})
		case isUpperWord(w):
			arg := strings.ToLower(w)
			if seen[arg] {
				return nil, fmt.Errorf("%w: invalid command %q: placeholder %s appears more than once",
					fabletypes.ErrMalformedPattern, template, w)
			}
			seen[arg] = true
			p.argNames = append(p.argNames, arg)
			p.placeholders++
			tokens = append(tokens, token{word: arg, placeholder: true})
		default:
			return nil, fmt.Errorf("%w: invalid command %q: words must be all lowercase letters or all capitals, got %q",
				fabletypes.ErrMalformedPattern, template, w)
		}
	}

	// The prefix is the longest leading run of literals; everything after it
	// takes part in placeholder allocation.
	cut := len(tokens)
	for i, t := range tokens {
		if t.placeholder {
			cut = i
			break
		}
	}
	for _, t := range tokens[:cut] {
		p.prefix = append(p.prefix, t.word)
	}
	p.rest = tokens[cut:]
	p.fixed = len(p.rest) - p.placeholders

	return p, nil
}

// MustCompile is like Compile but panics on error. It is intended for
// templates known valid at build time, such as the engine's built-ins.
func MustCompile(template, context string) *Pattern {
	p, err := Compile(template, context)
	if err != nil {
		panic(err)
	}
	return p
}

// Text returns the original template text.
func (p *Pattern) Text() string { return p.text }

// Context returns the pattern's declared context, unqualified.
func (p *Pattern) Context() string { return p.context }

// Placeholders returns the number of placeholder tokens.
func (p *Pattern) Placeholders() int { return p.placeholders }

// ArgNames returns the placeholder argument names in pattern order.
func (p *Pattern) ArgNames() []string {
	out := make([]string, len(p.argNames))
	copy(out, p.argNames)
	return out
}

// WithAlias returns a copy of p that displays as text and whose prefix is
// the given words instead of the compiled one. The engine uses it to mount
// the "?" shortcut on the help pattern; the placeholder structure is shared.
func (p *Pattern) WithAlias(text string, prefix ...string) *Pattern {
	alias := *p
	alias.text = text
	alias.prefix = prefix
	return &alias
}

// String implements fmt.Stringer for log output.
func (p *Pattern) String() string {
	return fmt.Sprintf("Pattern(%q)", p.text)
}

func isLowerWord(w string) bool {
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return len(w) > 0
}

func isUpperWord(w string) bool {
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return len(w) > 0
}
