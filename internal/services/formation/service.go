package formation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hackboard/hackboard/internal/common/clock"
	"github.com/hackboard/hackboard/internal/common/uuid"
	"github.com/hackboard/hackboard/internal/mail"
	"github.com/hackboard/hackboard/internal/models"
	participantRepo "github.com/hackboard/hackboard/internal/repositories/participant"
	teamRepo "github.com/hackboard/hackboard/internal/repositories/team"
	"github.com/hackboard/hackboard/internal/roster"
	"github.com/hackboard/hackboard/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	participantRepo participantRepo.Repository
	teamRepo        teamRepo.Repository
	messaging       messaging.Service
	mailTransport   mail.Transport
	former          *roster.Former
	clock           clock.Clock
	uuider          uuid.UUID
	logger          *slog.Logger

	// Serializes formation runs per hackathon so two admins cannot race
	// on the same participant set
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a new formation service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.ParticipantRepo == nil || cfg.TeamRepo == nil {
		return nil, errors.New("participant and team repositories are required")
	}
	if cfg.Messaging == nil || cfg.MailTransport == nil {
		return nil, errors.New("messaging service and mail transport are required")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	uuider := cfg.UUIDGenerator
	if uuider == nil {
		uuider = uuid.New()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		participantRepo: cfg.ParticipantRepo,
		teamRepo:        cfg.TeamRepo,
		messaging:       cfg.Messaging,
		mailTransport:   cfg.MailTransport,
		former: roster.New(&roster.Config{
			TeamSize:    cfg.TeamSize,
			DefaultRole: cfg.DefaultRole,
		}),
		clock:  clk,
		uuider: uuider,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}, nil
}

// FormTeams partitions a hackathon's approved, unassigned participants
// into role-balanced teams, persists the assignment atomically, then
// notifies every assigned member. Notification failures are logged and
// reported through the sent count, never rolled back.
func (s *service) FormTeams(ctx context.Context, input *FormTeamsInput) (*FormTeamsOutput, error) {
	if input == nil || input.HackathonID == "" {
		return nil, ErrMissingHackathonID
	}

	lock := s.hackathonLock(input.HackathonID)
	lock.Lock()
	defer lock.Unlock()

	eligible, err := s.participantRepo.ListEligibleParticipants(ctx, &participantRepo.ListEligibleParticipantsInput{
		HackathonID: input.HackathonID,
	})
	if err != nil {
		return nil, err
	}

	// No eligible participants is a valid no-op, not a failure
	if len(eligible) == 0 {
		return &FormTeamsOutput{}, nil
	}

	drafts := s.former.Form(eligible)
	if len(drafts) == 0 {
		return &FormTeamsOutput{}, nil
	}

	// Ordinals continue from the current team count
	base, err := s.teamRepo.CountTeams(ctx, &teamRepo.CountTeamsInput{
		HackathonID: input.HackathonID,
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	teams := make([]*models.Team, 0, len(drafts))

	for _, draft := range drafts {
		number := base + draft.Number

		memberIDs := make([]string, 0, len(draft.Members))
		for _, m := range draft.Members {
			memberIDs = append(memberIDs, m.ID)
		}

		teams = append(teams, &models.Team{
			ID:          s.uuider.NewUUID(),
			HackathonID: input.HackathonID,
			Number:      number,
			Name:        fmt.Sprintf("Team %d", number),
			MemberIDs:   memberIDs,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if _, err := s.teamRepo.CreateTeams(ctx, &teamRepo.CreateTeamsInput{Teams: teams}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	sent := 0
	for i, t := range teams {
		for _, member := range drafts[i].Members {
			if err := s.notifyAssignment(ctx, input.HackathonTitle, t, member); err != nil {
				s.logger.Warn("assignment notification failed",
					"hackathon_id", input.HackathonID,
					"participant_id", member.ID,
					"team", t.Name,
					"error", err)
				continue
			}
			sent++
		}
	}

	return &FormTeamsOutput{
		TeamsCreated:      len(teams),
		NotificationsSent: sent,
	}, nil
}

// DeleteAllTeams removes every team for a hackathon and clears the
// members' team references
func (s *service) DeleteAllTeams(ctx context.Context, input *DeleteAllTeamsInput) (*DeleteAllTeamsOutput, error) {
	if input == nil || input.HackathonID == "" {
		return nil, ErrMissingHackathonID
	}

	lock := s.hackathonLock(input.HackathonID)
	lock.Lock()
	defer lock.Unlock()

	output, err := s.teamRepo.DeleteAllTeams(ctx, &teamRepo.DeleteAllTeamsInput{
		HackathonID: input.HackathonID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	return &DeleteAllTeamsOutput{
		TeamsDeleted:           output.TeamsDeleted,
		ParticipantsUnassigned: output.ParticipantsUnassigned,
	}, nil
}

func (s *service) notifyAssignment(ctx context.Context, hackathonTitle string, t *models.Team, member *models.Participant) error {
	msg, err := s.messaging.ComposeTeamAssignmentMessage(ctx, &messaging.ComposeTeamAssignmentMessageInput{
		ParticipantName: member.Name,
		HackathonTitle:  hackathonTitle,
		TeamName:        t.Name,
		TeamNumber:      t.Number,
		Channel:         messaging.ChannelEmail,
	})
	if err != nil {
		return err
	}

	return s.mailTransport.Send(ctx, &mail.Message{
		To:       member.Email,
		Subject:  msg.Subject,
		HTMLBody: msg.Body,
	})
}

func (s *service) hackathonLock(hackathonID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[hackathonID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[hackathonID] = lock
	}
	return lock
}
