package domain

import "errors"

// ErrInvalidInput marks caller errors: an out-of-range hour, an impossible
// calendar date, or an out-of-enum symbol. It is never retried and must
// surface to the caller immediately; the computation layers wrap it with
// context via fmt.Errorf and %w.
var ErrInvalidInput = errors.New("invalid input")
