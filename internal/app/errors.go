package service

import "errors"

// Sentinel kinds for controller errors.
var (
	ErrLoadCategories   = errors.New("load categories failed")
	ErrLoadLeaderboards = errors.New("load leaderboards failed")
	ErrCompare          = errors.New("comparison failed")
)
