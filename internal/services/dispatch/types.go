package dispatch

import (
	"time"

	"github.com/hackboard/hackboard/internal/certificate"
	"github.com/hackboard/hackboard/internal/common/clock"
	"github.com/hackboard/hackboard/internal/mail"
	"github.com/hackboard/hackboard/internal/models"
	participantRepo "github.com/hackboard/hackboard/internal/repositories/participant"
	scoreRepo "github.com/hackboard/hackboard/internal/repositories/score"
	teamRepo "github.com/hackboard/hackboard/internal/repositories/team"
	"github.com/hackboard/hackboard/internal/services/messaging"
)

// Config holds configuration for the dispatch service
type Config struct {
	// BatchSize is the number of recipients processed concurrently per
	// batch. Kept small because each unit renders an image.
	BatchSize int

	// InterBatchDelay is the pause between consecutive batches,
	// rate-limiting the mail transport
	InterBatchDelay time.Duration

	// UnitTimeout bounds each recipient's delivery; expiry becomes a
	// failed result instead of stalling the run
	UnitTimeout time.Duration

	// Repository dependencies
	ParticipantRepo participantRepo.Repository
	TeamRepo        teamRepo.Repository
	ScoreRepo       scoreRepo.Repository

	// Service dependencies
	Renderer      certificate.Renderer
	Messaging     messaging.Service
	MailTransport mail.Transport
	Clock         clock.Clock
}

// Recipient is one certificate delivery target
type Recipient struct {
	// ParticipantID is the recipient's participant ID
	ParticipantID string

	// Name is the recipient's display name
	Name string

	// Email is the delivery address
	Email string

	// HackathonTitle is the hackathon's display title
	HackathonTitle string

	// TeamName is the recipient's team name
	TeamName string

	// Rank is the recipient's team rank
	Rank int

	// TotalScore is the recipient's team total score
	TotalScore float64

	// Date is the event date text drawn on the certificate
	Date string
}

// DispatchAllInput contains parameters for dispatching to a recipient
// list
type DispatchAllInput struct {
	// Recipients to deliver to, in submission order
	Recipients []*Recipient
}

// DispatchAllOutput contains the per-recipient results of a dispatch
// run
type DispatchAllOutput struct {
	// Results holds exactly one entry per submitted recipient, at the
	// recipient's submission-order index
	Results []*models.DispatchResult

	// Succeeded is the number of successful deliveries
	Succeeded int

	// Failed is the number of failed deliveries
	Failed int
}

// SendCertificatesInput contains parameters for a hackathon-wide
// certificate run
type SendCertificatesInput struct {
	// HackathonID is the hackathon to send certificates for
	HackathonID string

	// HackathonTitle is the hackathon's display title
	HackathonTitle string

	// EventDate is the event date text drawn on certificates
	EventDate string
}

// SendCertificatesOutput contains the results of a hackathon-wide
// certificate run
type SendCertificatesOutput struct {
	// Results holds one entry per recipient
	Results []*models.DispatchResult

	// Succeeded is the number of successful deliveries
	Succeeded int

	// Failed is the number of failed deliveries
	Failed int
}
