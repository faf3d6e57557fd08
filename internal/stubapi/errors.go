package stubapi

import "errors"

// Sentinel errors for the stub backend.
var (
	ErrInjected   = errors.New("injected failure")
	ErrBadRequest = errors.New("bad request")
)
