package domain

import "errors"

// The calculators fail in exactly two ways. Both are propagated to the
// caller for user display and matched with errors.Is; neither is ever
// silently clamped away beyond the documented finish-overrun substitution.
var (
	// ErrInvalidDistance reports a controle distance that is negative or
	// further past the nominal brevet distance than the rules allow.
	ErrInvalidDistance = errors.New("invalid controle distance")

	// ErrInvalidBrevetDistance reports a nominal distance outside the five
	// sanctioned brevet lengths.
	ErrInvalidBrevetDistance = errors.New("invalid brevet distance")
)
