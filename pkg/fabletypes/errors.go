package fabletypes

import "errors"

// Sentinel errors for setup-time failures. They are wrapped with detail at
// the point of failure; callers classify with errors.Is.
var (
	// ErrMalformedPattern indicates a command template containing a word
	// that is neither all-lowercase letters nor all-uppercase letters.
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrSignatureMismatch indicates that a handler's declared parameter
	// names do not equal the pattern's argument names plus fixed keywords.
	ErrSignatureMismatch = errors.New("handler signature mismatch")

	// ErrInvalidContext indicates that the session's current context is
	// unset when a match was attempted.
	ErrInvalidContext = errors.New("invalid context")

	// ErrRegistryFrozen indicates a registration attempted after the
	// dispatch loop has started.
	ErrRegistryFrozen = errors.New("registry is frozen")

	// ErrMalformedDirection indicates a direction name that is not all
	// lowercase.
	ErrMalformedDirection = errors.New("malformed direction")

	// ErrDuplicateDirection indicates a direction declared twice.
	ErrDuplicateDirection = errors.New("duplicate direction")

	// ErrUnknownDirection indicates use of a direction that was never
	// declared.
	ErrUnknownDirection = errors.New("unknown direction")
)
