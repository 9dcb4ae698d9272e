package messaging

// Channel is the delivery channel a message is composed for
type Channel string

const (
	// ChannelEmail composes messages for email delivery
	ChannelEmail Channel = "email"
)

// ComposeCertificateMessageInput contains the context for a
// certificate delivery message
type ComposeCertificateMessageInput struct {
	// ParticipantName is the recipient's display name
	ParticipantName string

	// HackathonTitle is the hackathon's display title
	HackathonTitle string

	// TeamName is the recipient's team name
	TeamName string

	// Rank is the recipient's team rank
	Rank int

	// IsWinner selects the congratulatory variant
	IsWinner bool

	// TotalScore is the team's total score, referenced for winners
	TotalScore float64

	// Channel is the delivery channel hint
	Channel Channel
}

// ComposeCertificateMessageOutput contains the composed message
type ComposeCertificateMessageOutput struct {
	// Subject is the message subject line
	Subject string

	// Body is the message body
	Body string
}

// ComposeTeamAssignmentMessageInput contains the context for a team
// assignment message
type ComposeTeamAssignmentMessageInput struct {
	// ParticipantName is the recipient's display name
	ParticipantName string

	// HackathonTitle is the hackathon's display title
	HackathonTitle string

	// TeamName is the team the participant was assigned to
	TeamName string

	// TeamNumber is the team's ordinal
	TeamNumber int

	// Channel is the delivery channel hint
	Channel Channel
}

// ComposeTeamAssignmentMessageOutput contains the composed message
type ComposeTeamAssignmentMessageOutput struct {
	// Subject is the message subject line
	Subject string

	// Body is the message body
	Body string
}
