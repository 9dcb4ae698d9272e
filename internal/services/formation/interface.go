package formation

import "context"

// Service defines the interface for team formation operations
type Service interface {
	// FormTeams partitions a hackathon's approved, unassigned
	// participants into role-balanced teams and notifies the members
	FormTeams(ctx context.Context, input *FormTeamsInput) (*FormTeamsOutput, error)

	// DeleteAllTeams removes every team for a hackathon and unassigns
	// the members
	DeleteAllTeams(ctx context.Context, input *DeleteAllTeamsInput) (*DeleteAllTeamsOutput, error)
}
