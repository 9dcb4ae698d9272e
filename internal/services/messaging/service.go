package messaging

import (
	"context"
	"errors"
	"fmt"
)

// service implements the Service interface
type service struct{}

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct{}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	return &service{}, nil
}

// ComposeCertificateMessage returns the subject and body for a
// certificate delivery. Winners get the congratulatory variant naming
// their ordinal placement and total score; everyone else gets the
// participation variant.
func (s *service) ComposeCertificateMessage(ctx context.Context, input *ComposeCertificateMessageInput) (*ComposeCertificateMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.HackathonTitle == "" || input.TeamName == "" {
		return nil, errors.New("hackathon title and team name are required")
	}

	name := input.ParticipantName
	if name == "" {
		name = "Participant"
	}

	if input.IsWinner {
		placement := ordinal(input.Rank)
		subject := fmt.Sprintf("Congratulations! %s took %s place at %s", input.TeamName, placement, input.HackathonTitle)
		body := fmt.Sprintf(
			"<p>Dear %s,</p>"+
				"<p>Congratulations! Your team <b>%s</b> finished in <b>%s place</b> at %s with a total score of %.1f.</p>"+
				"<p>Your certificate is attached. We hope to see you at the next event!</p>",
			name, input.TeamName, placement, input.HackathonTitle, input.TotalScore)

		return &ComposeCertificateMessageOutput{
			Subject: subject,
			Body:    body,
		}, nil
	}

	subject := fmt.Sprintf("Thank you for participating in %s", input.HackathonTitle)
	body := fmt.Sprintf(
		"<p>Dear %s,</p>"+
			"<p>Thank you for taking part in %s as a member of <b>%s</b>.</p>"+
			"<p>Your participation certificate is attached. We hope to see you at the next event!</p>",
		name, input.HackathonTitle, input.TeamName)

	return &ComposeCertificateMessageOutput{
		Subject: subject,
		Body:    body,
	}, nil
}

// ComposeTeamAssignmentMessage returns the subject and body telling a
// participant which team they were assigned to
func (s *service) ComposeTeamAssignmentMessage(ctx context.Context, input *ComposeTeamAssignmentMessageInput) (*ComposeTeamAssignmentMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.HackathonTitle == "" || input.TeamName == "" {
		return nil, errors.New("hackathon title and team name are required")
	}

	name := input.ParticipantName
	if name == "" {
		name = "Participant"
	}

	subject := fmt.Sprintf("You have been assigned to %s at %s", input.TeamName, input.HackathonTitle)
	body := fmt.Sprintf(
		"<p>Dear %s,</p>"+
			"<p>Teams for %s have been formed. You are a member of <b>%s</b> (team %d).</p>"+
			"<p>Good luck!</p>",
		name, input.HackathonTitle, input.TeamName, input.TeamNumber)

	return &ComposeTeamAssignmentMessageOutput{
		Subject: subject,
		Body:    body,
	}, nil
}

// ordinal returns the English ordinal for a rank (1st, 2nd, 3rd, ...)
func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		if n%100 != 11 {
			suffix = "st"
		}
	case 2:
		if n%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if n%100 != 13 {
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
