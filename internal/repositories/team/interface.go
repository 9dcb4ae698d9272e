package team

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hackboard/hackboard/internal/repositories/team Repository

import (
	"context"

	"github.com/hackboard/hackboard/internal/models"
)

// Repository defines the interface for team data persistence
type Repository interface {
	// CreateTeams persists a batch of teams and assigns every member's
	// team reference in a single atomic write
	CreateTeams(ctx context.Context, input *CreateTeamsInput) (*CreateTeamsOutput, error)

	// GetTeam retrieves a team by ID
	GetTeam(ctx context.Context, input *GetTeamInput) (*models.Team, error)

	// ListTeams retrieves all teams for a hackathon in ordinal order
	ListTeams(ctx context.Context, input *ListTeamsInput) ([]*models.Team, error)

	// CountTeams returns the number of teams for a hackathon
	CountTeams(ctx context.Context, input *CountTeamsInput) (int, error)

	// SetTeamIdea records a team's submitted idea
	SetTeamIdea(ctx context.Context, input *SetTeamIdeaInput) error

	// DeleteAllTeams removes every team for a hackathon and clears each
	// member's team reference in a single atomic write
	DeleteAllTeams(ctx context.Context, input *DeleteAllTeamsInput) (*DeleteAllTeamsOutput, error)
}
