package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hackboard/hackboard/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service. It composes
// message content only; delivery is the dispatch service's job.
type Service interface {
	// ComposeCertificateMessage returns the subject and body for a
	// certificate delivery, winner or participation variant
	ComposeCertificateMessage(ctx context.Context, input *ComposeCertificateMessageInput) (*ComposeCertificateMessageOutput, error)

	// ComposeTeamAssignmentMessage returns the subject and body telling
	// a participant which team they were assigned to
	ComposeTeamAssignmentMessage(ctx context.Context, input *ComposeTeamAssignmentMessageInput) (*ComposeTeamAssignmentMessageOutput, error)
}
