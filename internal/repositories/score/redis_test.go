package score

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

	s.testNow = time.Date(2025, 6, 12, 16, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndListScoreRecords() {
	records := []*models.ScoreRecord{
		{
			ID:          "score-1",
			HackathonID: "test-hackathon-id",
			TeamID:      "team-1",
			JudgeID:     "judge-1",
			Criterion:   "innovation",
			Value:       8.5,
			CreatedAt:   s.testNow,
		},
		{
			ID:          "score-2",
			HackathonID: "test-hackathon-id",
			TeamID:      "team-1",
			JudgeID:     "judge-2",
			Criterion:   "execution",
			Value:       7,
			CreatedAt:   s.testNow.Add(time.Minute),
		},
		{
			ID:          "score-3",
			HackathonID: "test-hackathon-id",
			TeamID:      "team-2",
			JudgeID:     "judge-1",
			Criterion:   "innovation",
			Value:       9,
			CreatedAt:   s.testNow.Add(2 * time.Minute),
		},
	}

	for _, record := range records {
		err := s.repo.SaveScoreRecord(context.Background(), &SaveScoreRecordInput{Record: record})
		s.Require().NoError(err)
	}

	listed, err := s.repo.ListScoreRecords(context.Background(), &ListScoreRecordsInput{
		HackathonID: "test-hackathon-id",
	})
	s.Require().NoError(err)
	s.Require().Len(listed, 3)

	s.Equal("score-1", listed[0].ID)
	s.Equal(8.5, listed[0].Value)
	s.Equal("team-2", listed[2].TeamID)
}

func (s *RedisRepositoryTestSuite) TestListScoreRecordsEmpty() {
	listed, err := s.repo.ListScoreRecords(context.Background(), &ListScoreRecordsInput{
		HackathonID: "empty-hackathon-id",
	})
	s.Require().NoError(err)
	s.Empty(listed)
}

func (s *RedisRepositoryTestSuite) TestSaveScoreRecordValidation() {
	err := s.repo.SaveScoreRecord(context.Background(), &SaveScoreRecordInput{
		Record: &models.ScoreRecord{ID: "score-1"},
	})
	s.Require().Error(err)
}
