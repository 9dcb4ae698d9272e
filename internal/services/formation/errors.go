package formation

import "errors"

// Define errors
var (
	// ErrPersistenceFailed indicates the formation write failed; the
	// run was not applied at all
	ErrPersistenceFailed = errors.New("team formation write failed")

	// ErrMissingHackathonID indicates the caller passed no hackathon ID
	ErrMissingHackathonID = errors.New("hackathon ID is required")
)
