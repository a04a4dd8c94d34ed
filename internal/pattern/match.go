package pattern

import (
	"strings"

	"fableshell/pkg/fabletypes"
)

// Match attempts to bind the tokenized input words to the pattern under the
// given current context. On success it returns the captured arguments, with
// each placeholder's words joined by single spaces, and ok true. A failed
// match is a normal outcome, not an error; the error return fires only for
// an unset current context.
//
// Allocation of input words to placeholders is greedy-first: the first
// candidate split consistent with the pattern's interior literal anchors
// wins, even when a later split would read more naturally. This ordering is
// part of the engine's contract.
func (p *Pattern) Match(words []string, current string) (fabletypes.Args, bool, error) {
	active, err := p.ActiveIn(current)
	if err != nil {
		return nil, false, err
	}
	if !active {
		return nil, false, nil
	}

	// Each placeholder consumes at least one word.
	if len(words) < p.placeholders {
		return nil, false, nil
	}

	if len(words) < len(p.prefix) {
		return nil, false, nil
	}
	for i, w := range p.prefix {
		if words[i] != w {
			return nil, false, nil
		}
	}
	input := words[len(p.prefix):]

	if len(input) == 0 && len(p.rest) == 0 {
		return fabletypes.Args{}, true, nil
	}
	if (len(input) == 0) != (len(p.rest) == 0) {
		return nil, false, nil
	}

	have := len(input) - p.fixed

	var captured fabletypes.Args
	matched := allocate(have, p.placeholders, func(counts []int) bool {
		args := make(fabletypes.Args, p.placeholders)
		next := 0 // index into input
		group := 0
		for _, tok := range p.rest {
			if tok.placeholder {
				n := counts[group]
				group++
				if next+n > len(input) {
					return false
				}
				args[tok.word] = strings.Join(input[next:next+n], " ")
				next += n
				continue
			}
			if next >= len(input) || input[next] != tok.word {
				return false
			}
			next++
		}
		if next != len(input) {
			return false
		}
		captured = args
		return true
	})
	if !matched {
		return nil, false, nil
	}
	return captured, true, nil
}
