package participant

import "github.com/hackboard/hackboard/internal/models"

type SaveParticipantInput struct {
	Participant *models.Participant
}

type GetParticipantInput struct {
	ParticipantID string
}

type ListParticipantsInput struct {
	HackathonID string
}

type ListEligibleParticipantsInput struct {
	HackathonID string
}
