package dispatch

import "errors"

// Define errors
var (
	// ErrMissingHackathonID indicates the caller passed no hackathon ID
	ErrMissingHackathonID = errors.New("hackathon ID is required")

	// ErrNilInput indicates the caller passed a nil input
	ErrNilInput = errors.New("input cannot be nil")
)
