package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hackboard/hackboard/internal/repositories/participant Repository

import (
	"context"

	"github.com/hackboard/hackboard/internal/models"
)

// Repository defines the interface for participant data persistence
type Repository interface {
	// SaveParticipant persists a participant
	SaveParticipant(ctx context.Context, input *SaveParticipantInput) error

	// GetParticipant retrieves a participant by ID
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// ListParticipants retrieves all participants for a hackathon in
	// registration order
	ListParticipants(ctx context.Context, input *ListParticipantsInput) ([]*models.Participant, error)

	// ListEligibleParticipants retrieves approved participants with no
	// team assignment, in registration order
	ListEligibleParticipants(ctx context.Context, input *ListEligibleParticipantsInput) ([]*models.Participant, error)
}
