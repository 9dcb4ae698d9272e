package team

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hackboard/hackboard/internal/models"
	participantRepo "github.com/hackboard/hackboard/internal/repositories/participant"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr              *miniredis.Miniredis
	client          *redis.Client
	repo            Repository
	participantRepo participantRepo.Repository
	testNow         time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	pRepo, err := participantRepo.NewRedis(&participantRepo.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.participantRepo = pRepo

	s.testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) saveParticipant(id string) {
	err := s.participantRepo.SaveParticipant(context.Background(), &participantRepo.SaveParticipantInput{
		Participant: &models.Participant{
			ID:           id,
			HackathonID:  "test-hackathon-id",
			Name:         "Participant " + id,
			Email:        id + "@example.com",
			Role:         "Developer",
			Status:       models.ApprovalStatusApproved,
			RegisteredAt: s.testNow,
			UpdatedAt:    s.testNow,
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) newTeam(id string, number int, memberIDs []string) *models.Team {
	return &models.Team{
		ID:          id,
		HackathonID: "test-hackathon-id",
		Number:      number,
		Name:        "Team " + id,
		MemberIDs:   memberIDs,
		CreatedAt:   s.testNow,
		UpdatedAt:   s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateTeamsAssignsMembers() {
	s.saveParticipant("participant-1")
	s.saveParticipant("participant-2")
	s.saveParticipant("participant-3")

	output, err := s.repo.CreateTeams(context.Background(), &CreateTeamsInput{
		Teams: []*models.Team{
			s.newTeam("team-1", 1, []string{"participant-1", "participant-2"}),
			s.newTeam("team-2", 2, []string{"participant-3"}),
		},
	})
	s.Require().NoError(err)
	s.Equal(2, output.TeamsCreated)

	// Every member's team reference is set
	p, err := s.participantRepo.GetParticipant(context.Background(), &participantRepo.GetParticipantInput{
		ParticipantID: "participant-1",
	})
	s.Require().NoError(err)
	s.Equal("team-1", p.TeamID)

	p, err = s.participantRepo.GetParticipant(context.Background(), &participantRepo.GetParticipantInput{
		ParticipantID: "participant-3",
	})
	s.Require().NoError(err)
	s.Equal("team-2", p.TeamID)
}

func (s *RedisRepositoryTestSuite) TestCreateTeamsMissingMemberFailsWhole() {
	s.saveParticipant("participant-1")

	_, err := s.repo.CreateTeams(context.Background(), &CreateTeamsInput{
		Teams: []*models.Team{
			s.newTeam("team-1", 1, []string{"participant-1", "participant-missing"}),
		},
	})
	s.Require().ErrorIs(err, participantRepo.ErrParticipantNotFound)

	// Nothing was applied: no team rows, no assignment
	count, err := s.repo.CountTeams(context.Background(), &CountTeamsInput{
		HackathonID: "test-hackathon-id",
	})
	s.Require().NoError(err)
	s.Zero(count)

	p, err := s.participantRepo.GetParticipant(context.Background(), &participantRepo.GetParticipantInput{
		ParticipantID: "participant-1",
	})
	s.Require().NoError(err)
	s.Empty(p.TeamID)
}

func (s *RedisRepositoryTestSuite) TestCreateTeamsRejectsAlreadyAssignedMember() {
	s.saveParticipant("participant-1")

	_, err := s.repo.CreateTeams(context.Background(), &CreateTeamsInput{
		Teams: []*models.Team{s.newTeam("team-1", 1, []string{"participant-1"})},
	})
	s.Require().NoError(err)

	_, err = s.repo.CreateTeams(context.Background(), &CreateTeamsInput{
		Teams: []*models.Team{s.newTeam("team-2", 2, []string{"participant-1"})},
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "already belongs")
}

func (s *RedisRepositoryTestSuite) TestListTeamsOrdinalOrder() {
	s.saveParticipant("participant-1")
	s.saveParticipant("participant-2")
	s.saveParticipant("participant-3")

	_, err := s.repo.CreateTeams(context.Background(), &CreateTeamsInput{
		Teams: []*models.Team{
			s.newTeam("team-3", 3, []string{"participant-3"}),
			s.newTeam("team-1", 1, []string{"participant-1"}),
			s.newTeam("team-2", 2, []string{"participant-2"}),
		},
	})
	s.Require().NoError(err)

	teams, err := s.repo.ListTeams(context.Background(), &ListTeamsInput{
		HackathonID: "test-hackathon-id",
	})
	s.Require().NoError(err)
	s.Require().Len(teams, 3)
	s.Equal(1, teams[0].Number)
	s.Equal(2, teams[1].Number)
	s.Equal(3, teams[2].Number)
}

func (s *RedisRepositoryTestSuite) TestGetTeamNotFound() {
	_, err := s.repo.GetTeam(context.Background(), &GetTeamInput{
		TeamID: "missing-team-id",
	})
	s.Require().ErrorIs(err, ErrTeamNotFound)
}

func (s *RedisRepositoryTestSuite) TestSetTeamIdea() {
	s.saveParticipant("participant-1")

	_, err := s.repo.CreateTeams(context.Background(), &CreateTeamsInput{
		Teams: []*models.Team{s.newTeam("team-1", 1, []string{"participant-1"})},
	})
	s.Require().NoError(err)

	err = s.repo.SetTeamIdea(context.Background(), &SetTeamIdeaInput{
		TeamID:          "team-1",
		IdeaTitle:       "Realtime judging board",
		IdeaDescription: "Live score updates for judges",
	})
	s.Require().NoError(err)

	t, err := s.repo.GetTeam(context.Background(), &GetTeamInput{TeamID: "team-1"})
	s.Require().NoError(err)
	s.Equal("Realtime judging board", t.IdeaTitle)
	s.Equal("Live score updates for judges", t.IdeaDescription)
}

func (s *RedisRepositoryTestSuite) TestDeleteAllTeamsClearsAssignments() {
	s.saveParticipant("participant-1")
	s.saveParticipant("participant-2")
	s.saveParticipant("participant-3")

	_, err := s.repo.CreateTeams(context.Background(), &CreateTeamsInput{
		Teams: []*models.Team{
			s.newTeam("team-1", 1, []string{"participant-1", "participant-2"}),
			s.newTeam("team-2", 2, []string{"participant-3"}),
		},
	})
	s.Require().NoError(err)

	output, err := s.repo.DeleteAllTeams(context.Background(), &DeleteAllTeamsInput{
		HackathonID: "test-hackathon-id",
	})
	s.Require().NoError(err)
	s.Equal(2, output.TeamsDeleted)
	s.Equal(3, output.ParticipantsUnassigned)

	count, err := s.repo.CountTeams(context.Background(), &CountTeamsInput{
		HackathonID: "test-hackathon-id",
	})
	s.Require().NoError(err)
	s.Zero(count)

	for _, id := range []string{"participant-1", "participant-2", "participant-3"} {
		p, err := s.participantRepo.GetParticipant(context.Background(), &participantRepo.GetParticipantInput{
			ParticipantID: id,
		})
		s.Require().NoError(err)
		s.Empty(p.TeamID)
	}
}

func (s *RedisRepositoryTestSuite) TestDeleteAllTeamsNoTeamsIsNoOp() {
	output, err := s.repo.DeleteAllTeams(context.Background(), &DeleteAllTeamsInput{
		HackathonID: "test-hackathon-id",
	})
	s.Require().NoError(err)
	s.Zero(output.TeamsDeleted)
	s.Zero(output.ParticipantsUnassigned)
}
