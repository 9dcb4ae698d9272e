package formation

import (
	"log/slog"

	"github.com/hackboard/hackboard/internal/common/clock"
	"github.com/hackboard/hackboard/internal/common/uuid"
	"github.com/hackboard/hackboard/internal/mail"
	participantRepo "github.com/hackboard/hackboard/internal/repositories/participant"
	teamRepo "github.com/hackboard/hackboard/internal/repositories/team"
	"github.com/hackboard/hackboard/internal/services/messaging"
)

// Config holds configuration for the formation service
type Config struct {
	// TeamSize is the target number of members per team
	TeamSize int

	// DefaultRole is used for participants with no declared role
	DefaultRole string

	// Repository dependencies
	ParticipantRepo participantRepo.Repository
	TeamRepo        teamRepo.Repository

	// Service dependencies
	Messaging     messaging.Service
	MailTransport mail.Transport
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger for notification failures; defaults to slog.Default
	Logger *slog.Logger
}

// FormTeamsInput contains parameters for forming teams
type FormTeamsInput struct {
	// HackathonID is the hackathon to form teams for
	HackathonID string

	// HackathonTitle is the hackathon's display title, used in
	// assignment notifications
	HackathonTitle string
}

// FormTeamsOutput contains the result of forming teams
type FormTeamsOutput struct {
	// TeamsCreated is the number of teams persisted
	TeamsCreated int

	// NotificationsSent is the number of assignment notifications
	// delivered; failures are logged and excluded from the count
	NotificationsSent int
}

// DeleteAllTeamsInput contains parameters for deleting a hackathon's
// teams
type DeleteAllTeamsInput struct {
	// HackathonID is the hackathon to delete teams for
	HackathonID string
}

// DeleteAllTeamsOutput contains the result of deleting teams
type DeleteAllTeamsOutput struct {
	// TeamsDeleted is the number of teams removed
	TeamsDeleted int

	// ParticipantsUnassigned is the number of members whose team
	// reference was cleared
	ParticipantsUnassigned int
}
