package pattern

import (
	"fmt"
	"strings"

	"fableshell/pkg/fabletypes"
)

// Qualify roots a context path under Root: "shop" becomes "default.shop",
// while Root itself is returned unchanged. Session code qualifies a context
// once, at switch time, so resolver checks stay plain string comparisons.
func Qualify(context string) string {
	if context == Root {
		return Root
	}
	return Root + "." + context
}

// ActiveIn reports whether the pattern is active when the session's current
// context is current. A pattern with no context is never active. Otherwise
// the pattern's context is qualified under Root and the pattern is active
// when current equals it or is a strict descendant of it.
//
// current must be a qualified context; an empty value fails with
// ErrInvalidContext.
func (p *Pattern) ActiveIn(current string) (bool, error) {
	if current == "" {
		return false, fmt.Errorf("%w: current context is unset", fabletypes.ErrInvalidContext)
	}
	if p.context == "" {
		return false, nil
	}

	qualified := Qualify(p.context)
	if current == qualified {
		return true, nil
	}
	return strings.HasPrefix(current, qualified+"."), nil
}
