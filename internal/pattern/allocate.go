package pattern

// allocate enumerates the ways have input words can be split across
// placeholders groups of at least one word each, calling fn with each
// candidate tuple until fn returns true. It reports whether any call did.
//
// Tuples are produced longest-match-first: the first position starts at the
// maximum feasible count (have − placeholders + 1) and is decremented, with
// the remaining budget allocated to the remaining positions by the same
// rule. The total number of tuples is C(have−1, placeholders−1).
//
// The slice passed to fn is reused between calls; fn must not retain it.
func allocate(have, placeholders int, fn func([]int) bool) bool {
	buf := make([]int, placeholders)
	return allocateInto(have, buf, 0, fn)
}

func allocateInto(have int, buf []int, pos int, fn func([]int) bool) bool {
	placeholders := len(buf) - pos
	switch {
	case have < placeholders:
		return false
	case have == placeholders:
		for i := pos; i < len(buf); i++ {
			buf[i] = 1
		}
		return fn(buf)
	case placeholders < 1:
		return false
	case placeholders == 1:
		buf[pos] = have
		return fn(buf)
	}

	// Greedy: give the first group everything it can take, then backtrack.
	rest := placeholders - 1
	for take := have - rest; take > 0; take-- {
		buf[pos] = take
		if allocateInto(have-take, buf, pos+1, fn) {
			return true
		}
	}
	return false
}
