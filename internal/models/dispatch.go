package models

// DispatchStatus represents the outcome of one certificate dispatch
type DispatchStatus string

const (
	// DispatchStatusSuccess indicates the certificate was rendered and
	// delivered
	DispatchStatusSuccess DispatchStatus = "success"

	// DispatchStatusFailed indicates rendering or delivery failed
	DispatchStatusFailed DispatchStatus = "failed"
)

// DispatchResult records the outcome of attempting to render and send
// one recipient's certificate. Results are produced per run and are
// not persisted.
type DispatchResult struct {
	// ParticipantID is the recipient's participant ID
	ParticipantID string

	// Name is the recipient's display name
	Name string

	// Email is the address the certificate was sent to
	Email string

	// TeamName is the recipient's team name
	TeamName string

	// Rank is the recipient's team rank at dispatch time
	Rank int

	// Status is the dispatch outcome
	Status DispatchStatus

	// Error holds the failure detail when Status is failed
	Error string
}
