package models

import (
	"time"
)

// Team represents a formed team within a hackathon
type Team struct {
	// ID is the unique identifier for the team
	ID string

	// HackathonID is the hackathon the team belongs to
	HackathonID string

	// Number is the team's ordinal within the hackathon, unique and
	// contiguous across an active formation
	Number int

	// Name is the team's display name
	Name string

	// MemberIDs contains the participant IDs of the team's members, in
	// assignment order
	MemberIDs []string

	// IdeaTitle is the title of the team's submitted idea, if any
	IdeaTitle string

	// IdeaDescription is the description of the team's submitted idea
	IdeaDescription string

	// CreatedAt is when the team was created
	CreatedAt time.Time

	// UpdatedAt is when the team was last updated
	UpdatedAt time.Time
}
