package certificate

//go:generate mockgen -package=mocks -destination=mocks/mock_renderer.go github.com/hackboard/hackboard/internal/certificate Renderer

// Renderer produces certificate images for hackathon participants
type Renderer interface {
	// Render produces one PNG certificate for the given context. It is
	// safe for concurrent use.
	Render(input *RenderInput) ([]byte, error)
}

// RenderInput contains the fields drawn onto a certificate
type RenderInput struct {
	// ParticipantName is the recipient's display name
	ParticipantName string

	// HackathonTitle is the hackathon's display title
	HackathonTitle string

	// TeamName is the recipient's team name
	TeamName string

	// Rank is the recipient's team rank
	Rank int

	// IsWinner selects the winner layout; derived by the caller as
	// rank <= 3
	IsWinner bool

	// TotalScore is the team's total score, drawn on winner
	// certificates
	TotalScore float64

	// Date is the event date text drawn on the certificate
	Date string
}
