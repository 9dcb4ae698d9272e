package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
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

// winnerRankThreshold is the highest rank that counts as a winner
const winnerRankThreshold = 3

// service implements the Service interface
type service struct {
	batchSize       int
	interBatchDelay time.Duration
	unitTimeout     time.Duration
	participantRepo participantRepo.Repository
	teamRepo        teamRepo.Repository
	scoreRepo       scoreRepo.Repository
	renderer        certificate.Renderer
	messaging       messaging.Service
	mailTransport   mail.Transport
	clock           clock.Clock
}

// NewService creates a new dispatch service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Renderer == nil || cfg.Messaging == nil || cfg.MailTransport == nil {
		return nil, errors.New("renderer, messaging service and mail transport are required")
	}
	if cfg.ParticipantRepo == nil || cfg.TeamRepo == nil || cfg.ScoreRepo == nil {
		return nil, errors.New("participant, team and score repositories are required")
	}

	batchSize := cfg.BatchSize
	if batchSize < 1 {
		batchSize = 3
	}

	interBatchDelay := cfg.InterBatchDelay
	if interBatchDelay == 0 {
		interBatchDelay = 2 * time.Second
	}

	unitTimeout := cfg.UnitTimeout
	if unitTimeout == 0 {
		unitTimeout = 30 * time.Second
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &service{
		batchSize:       batchSize,
		interBatchDelay: interBatchDelay,
		unitTimeout:     unitTimeout,
		participantRepo: cfg.ParticipantRepo,
		teamRepo:        cfg.TeamRepo,
		scoreRepo:       cfg.ScoreRepo,
		renderer:        cfg.Renderer,
		messaging:       cfg.Messaging,
		mailTransport:   cfg.MailTransport,
		clock:           clk,
	}, nil
}

// DispatchAll renders and delivers a certificate to every recipient.
// Recipients are processed in consecutive batches of batchSize; within
// a batch every unit runs concurrently, and a batch fully completes
// before the next one starts. A pause separates batches, but none
// follows the last. Per-recipient failures are recorded, never
// propagated, so one bad recipient cannot abort the run.
func (s *service) DispatchAll(ctx context.Context, input *DispatchAllInput) (*DispatchAllOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	recipients := input.Recipients
	results := make([]*models.DispatchResult, len(recipients))

	for start := 0; start < len(recipients); start += s.batchSize {
		end := min(start+s.batchSize, len(recipients))

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = s.dispatchOne(ctx, recipients[i])
			}(i)
		}
		wg.Wait()

		if end < len(recipients) {
			s.clock.Sleep(s.interBatchDelay)
		}
	}

	output := &DispatchAllOutput{Results: results}
	for _, r := range results {
		if r.Status == models.DispatchStatusSuccess {
			output.Succeeded++
		} else {
			output.Failed++
		}
	}

	return output, nil
}

// dispatchOne renders, composes and delivers for a single recipient,
// always returning a result
func (s *service) dispatchOne(ctx context.Context, r *Recipient) *models.DispatchResult {
	result := &models.DispatchResult{
		ParticipantID: r.ParticipantID,
		Name:          r.Name,
		Email:         r.Email,
		TeamName:      r.TeamName,
		Rank:          r.Rank,
		Status:        models.DispatchStatusSuccess,
	}

	unitCtx, cancel := context.WithTimeout(ctx, s.unitTimeout)
	defer cancel()

	isWinner := r.Rank >= 1 && r.Rank <= winnerRankThreshold

	img, err := s.renderer.Render(&certificate.RenderInput{
		ParticipantName: r.Name,
		HackathonTitle:  r.HackathonTitle,
		TeamName:        r.TeamName,
		Rank:            r.Rank,
		IsWinner:        isWinner,
		TotalScore:      r.TotalScore,
		Date:            r.Date,
	})
	if err != nil {
		return failResult(result, fmt.Errorf("render: %w", err))
	}

	msg, err := s.messaging.ComposeCertificateMessage(unitCtx, &messaging.ComposeCertificateMessageInput{
		ParticipantName: r.Name,
		HackathonTitle:  r.HackathonTitle,
		TeamName:        r.TeamName,
		Rank:            r.Rank,
		IsWinner:        isWinner,
		TotalScore:      r.TotalScore,
		Channel:         messaging.ChannelEmail,
	})
	if err != nil {
		return failResult(result, fmt.Errorf("compose: %w", err))
	}

	err = s.mailTransport.Send(unitCtx, &mail.Message{
		To:       r.Email,
		Subject:  msg.Subject,
		HTMLBody: msg.Body,
		Attachments: []*mail.Attachment{
			{
				Filename: "certificate.png",
				Bytes:    img,
				MIMEType: "image/png",
			},
		},
	})
	if err != nil {
		return failResult(result, fmt.Errorf("send: %w", err))
	}

	return result
}

// SendCertificates builds the recipient list for a hackathon and
// dispatches to all of them. Teams are visited in ordinal order and
// members in assignment order, so the result order is stable.
func (s *service) SendCertificates(ctx context.Context, input *SendCertificatesInput) (*SendCertificatesOutput, error) {
	if input == nil || input.HackathonID == "" {
		return nil, ErrMissingHackathonID
	}

	teams, err := s.teamRepo.ListTeams(ctx, &teamRepo.ListTeamsInput{
		HackathonID: input.HackathonID,
	})
	if err != nil {
		return nil, err
	}

	// No teams means no recipients; a valid no-op
	if len(teams) == 0 {
		return &SendCertificatesOutput{Results: []*models.DispatchResult{}}, nil
	}

	records, err := s.scoreRepo.ListScoreRecords(ctx, &scoreRepo.ListScoreRecordsInput{
		HackathonID: input.HackathonID,
	})
	if err != nil {
		return nil, err
	}

	rankings := rankTeams(teams, records)
	byTeam := make(map[string]*models.TeamRanking, len(rankings))
	for _, ranking := range rankings {
		byTeam[ranking.TeamID] = ranking
	}

	participants, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{
		HackathonID: input.HackathonID,
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Participant, len(participants))
	for _, p := range participants {
		byID[p.ID] = p
	}

	recipients := make([]*Recipient, 0, len(participants))
	for _, t := range teams {
		ranking := byTeam[t.ID]
		for _, memberID := range t.MemberIDs {
			p, ok := byID[memberID]
			if !ok {
				continue
			}

			recipients = append(recipients, &Recipient{
				ParticipantID:  p.ID,
				Name:           p.Name,
				Email:          p.Email,
				HackathonTitle: input.HackathonTitle,
				TeamName:       t.Name,
				Rank:           ranking.Rank,
				TotalScore:     ranking.TotalScore,
				Date:           input.EventDate,
			})
		}
	}

	output, err := s.DispatchAll(ctx, &DispatchAllInput{Recipients: recipients})
	if err != nil {
		return nil, err
	}

	return &SendCertificatesOutput{
		Results:   output.Results,
		Succeeded: output.Succeeded,
		Failed:    output.Failed,
	}, nil
}

func failResult(result *models.DispatchResult, err error) *models.DispatchResult {
	result.Status = models.DispatchStatusFailed
	result.Error = err.Error()
	return result
}
