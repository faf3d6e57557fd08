package backend

import (
	"errors"
	"fmt"
)

// Sentinel kinds for backend errors.
var (
	ErrTransport    = errors.New("backend unreachable")
	ErrStatus       = errors.New("backend returned non-OK status")
	ErrDecode       = errors.New("backend response could not be decoded")
	ErrUnknownBoard = errors.New("unknown leaderboard")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s: status %d", ErrStatus, e.Endpoint, e.Code)
}

// Unwrap lets errors.Is match ErrStatus.
func (e *StatusError) Unwrap() error { return ErrStatus }
