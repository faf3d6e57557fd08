package popup

import "errors"

// Sentinel errors for the popup surface.
var (
	ErrTemplates = errors.New("popup templates invalid")
	ErrRender    = errors.New("popup render failed")
)
