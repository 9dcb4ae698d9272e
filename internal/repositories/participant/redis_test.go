package participant

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hackboard/hackboard/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newParticipant(id string, offset time.Duration) *models.Participant {
	return &models.Participant{
		ID:           id,
		HackathonID:  "test-hackathon-id",
		Name:         "Participant " + id,
		Email:        id + "@example.com",
		Role:         "Developer",
		Status:       models.ApprovalStatusApproved,
		RegisteredAt: s.testNow.Add(offset),
		UpdatedAt:    s.testNow.Add(offset),
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetParticipant() {
	p := s.newParticipant("test-participant-id", 0)

	err := s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{
		Participant: p,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "test-participant-id",
	})
	s.Require().NoError(err)

	s.Equal(p.ID, retrieved.ID)
	s.Equal(p.HackathonID, retrieved.HackathonID)
	s.Equal(p.Email, retrieved.Email)
	s.Equal(p.Role, retrieved.Role)
	s.Equal(models.ApprovalStatusApproved, retrieved.Status)
	s.Empty(retrieved.TeamID)
}

func (s *RedisRepositoryTestSuite) TestGetParticipantNotFound() {
	_, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "missing-participant-id",
	})
	s.Require().ErrorIs(err, ErrParticipantNotFound)
}

func (s *RedisRepositoryTestSuite) TestListParticipantsPreservesRegistrationOrder() {
	// Save out of order; the index is scored by registration time
	second := s.newParticipant("participant-2", time.Minute)
	first := s.newParticipant("participant-1", 0)
	third := s.newParticipant("participant-3", 2*time.Minute)

	for _, p := range []*models.Participant{second, first, third} {
		err := s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{Participant: p})
		s.Require().NoError(err)
	}

	participants, err := s.repo.ListParticipants(context.Background(), &ListParticipantsInput{
		HackathonID: "test-hackathon-id",
	})
	s.Require().NoError(err)
	s.Require().Len(participants, 3)

	s.Equal("participant-1", participants[0].ID)
	s.Equal("participant-2", participants[1].ID)
	s.Equal("participant-3", participants[2].ID)
}

func (s *RedisRepositoryTestSuite) TestListParticipantsEmptyHackathon() {
	participants, err := s.repo.ListParticipants(context.Background(), &ListParticipantsInput{
		HackathonID: "empty-hackathon-id",
	})
	s.Require().NoError(err)
	s.Empty(participants)
}

func (s *RedisRepositoryTestSuite) TestListEligibleParticipantsFilters() {
	approved := s.newParticipant("participant-approved", 0)

	pending := s.newParticipant("participant-pending", time.Minute)
	pending.Status = models.ApprovalStatusPending

	rejected := s.newParticipant("participant-rejected", 2*time.Minute)
	rejected.Status = models.ApprovalStatusRejected

	assigned := s.newParticipant("participant-assigned", 3*time.Minute)
	assigned.TeamID = "test-team-id"

	for _, p := range []*models.Participant{approved, pending, rejected, assigned} {
		err := s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{Participant: p})
		s.Require().NoError(err)
	}

	eligible, err := s.repo.ListEligibleParticipants(context.Background(), &ListEligibleParticipantsInput{
		HackathonID: "test-hackathon-id",
	})
	s.Require().NoError(err)
	s.Require().Len(eligible, 1)
	s.Equal("participant-approved", eligible[0].ID)
}

func (s *RedisRepositoryTestSuite) TestSaveParticipantOverwrites() {
	p := s.newParticipant("test-participant-id", 0)
	err := s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{Participant: p})
	s.Require().NoError(err)

	p.TeamID = "test-team-id"
	err = s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{Participant: p})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "test-participant-id",
	})
	s.Require().NoError(err)
	s.Equal("test-team-id", retrieved.TeamID)

	// Overwriting must not duplicate the index entry
	participants, err := s.repo.ListParticipants(context.Background(), &ListParticipantsInput{
		HackathonID: "test-hackathon-id",
	})
	s.Require().NoError(err)
	s.Len(participants, 1)
}
