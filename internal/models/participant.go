package models

import (
	"time"
)

// ApprovalStatus represents the admin review state of a registration
type ApprovalStatus string

const (
	// ApprovalStatusPending indicates a registration awaiting admin review
	ApprovalStatusPending ApprovalStatus = "pending"

	// ApprovalStatusApproved indicates a registration accepted by an admin
	ApprovalStatusApproved ApprovalStatus = "approved"

	// ApprovalStatusRejected indicates a registration declined by an admin
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Participant represents a person registered for a hackathon
type Participant struct {
	// ID is the unique identifier for the participant
	ID string

	// HackathonID is the hackathon the participant registered for
	HackathonID string

	// Name is the participant's display name
	Name string

	// Email is where notifications and certificates are delivered
	Email string

	// Role is the participant's declared role (e.g. Developer, Designer)
	Role string

	// Status is the admin review state of the registration
	Status ApprovalStatus

	// TeamID is the team the participant was assigned to, empty until
	// team formation runs
	TeamID string

	// RegisteredAt is when the participant registered
	RegisteredAt time.Time

	// UpdatedAt is when the participant was last updated
	UpdatedAt time.Time
}
