package mockdata

import "errors"

// Sentinel kinds for synthesis errors.
var (
	ErrSynthesis = errors.New("comparison synthesis failed")
)
