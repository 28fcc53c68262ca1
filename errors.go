package playerfolio

import "errors"

// The error kinds a mutation can fail with. Operations wrap them with
// context; callers discriminate with errors.Is.
var (
	// ErrValidation reports malformed input to a book operation:
	// non-positive shares, negative price or fees, or a new position
	// missing required fields. No state is mutated.
	ErrValidation = errors.New("invalid input")

	// ErrInsufficientShares reports a sell of more shares than held.
	// The sell is not applied, not even partially.
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrMalformedInput reports a bulk import payload that is not
	// parseable as the expected shape.
	ErrMalformedInput = errors.New("malformed input")
)
