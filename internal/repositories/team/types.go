package team

import "github.com/hackboard/hackboard/internal/models"

type CreateTeamsInput struct {
	Teams []*models.Team
}

type CreateTeamsOutput struct {
	TeamsCreated int
}

type GetTeamInput struct {
	TeamID string
}

type ListTeamsInput struct {
	HackathonID string
}

type CountTeamsInput struct {
	HackathonID string
}

type SetTeamIdeaInput struct {
	TeamID          string
	IdeaTitle       string
	IdeaDescription string
}

type DeleteAllTeamsInput struct {
	HackathonID string
}

type DeleteAllTeamsOutput struct {
	TeamsDeleted           int
	ParticipantsUnassigned int
}
