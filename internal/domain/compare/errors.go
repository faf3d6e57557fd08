package compare

import "errors"

// Sentinel kinds for comparison errors. These allow errors.Is from callers.
var (
	ErrMissingURL = errors.New("missing profile url")
	ErrInvalidURL = errors.New("invalid profile url")
	ErrMalformed  = errors.New("malformed comparison")
)
