package score

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hackboard/hackboard/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	scoreKeyPrefix   = "score:"
	scoreIndexPrefix = "hackathon:scores:" // Per-hackathon submission-order index
)

// Config holds configuration for the Redis score repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed score repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveScoreRecord appends a judge's score for a team to Redis
func (r *redisRepository) SaveScoreRecord(ctx context.Context, input *SaveScoreRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.ID == "" || record.HackathonID == "" || record.TeamID == "" {
		return errors.New("record needs an ID, hackathon ID and team ID")
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal score record: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, fmt.Sprintf("%s%s", scoreKeyPrefix, record.ID), recordJSON, 0)
	pipe.ZAdd(ctx, fmt.Sprintf("%s%s", scoreIndexPrefix, record.HackathonID), redis.Z{
		Score:  float64(record.CreatedAt.UnixNano()),
		Member: record.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save score record: %w", err)
	}

	return nil
}

// ListScoreRecords retrieves all score records for a hackathon
func (r *redisRepository) ListScoreRecords(ctx context.Context, input *ListScoreRecordsInput) ([]*models.ScoreRecord, error) {
	if input == nil || input.HackathonID == "" {
		return nil, errors.New("input and hackathon ID cannot be empty")
	}

	indexKey := fmt.Sprintf("%s%s", scoreIndexPrefix, input.HackathonID)
	recordIDs, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score record IDs: %w", err)
	}

	if len(recordIDs) == 0 {
		return []*models.ScoreRecord{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(recordIDs))

	for _, id := range recordIDs {
		commands = append(commands, pipe.Get(ctx, fmt.Sprintf("%s%s", scoreKeyPrefix, id)))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get score records: %w", err)
	}

	records := make([]*models.ScoreRecord, 0, len(recordIDs))
	for i, cmd := range commands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get score record %s: %w", recordIDs[i], err)
		}

		var record models.ScoreRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score record %s: %w", recordIDs[i], err)
		}

		records = append(records, &record)
	}

	return records, nil
}
