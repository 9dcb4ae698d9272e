package participant

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
	participantKeyPrefix   = "participant:"
	participantIndexPrefix = "hackathon:participants:" // Per-hackathon registration-order index
)

// ErrParticipantNotFound is returned when a participant is not found
var ErrParticipantNotFound = errors.New("participant not found")

// Key returns the Redis key for a participant record. The team
// repository uses it to update member records inside the same
// transaction as team writes.
func Key(participantID string) string {
	return fmt.Sprintf("%s%s", participantKeyPrefix, participantID)
}

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed participant repository
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

// SaveParticipant persists a participant to Redis
func (r *redisRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	p := input.Participant
	if p.ID == "" {
		return errors.New("participant ID cannot be empty")
	}

	// Marshal the participant to JSON
	participantJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	pipe := r.client.TxPipeline()

	participantKey := Key(p.ID)
	pipe.Set(ctx, participantKey, participantJSON, 0)

	// Keep the hackathon index ordered by registration time so listing
	// preserves insertion order
	if p.HackathonID != "" {
		indexKey := fmt.Sprintf("%s%s", participantIndexPrefix, p.HackathonID)
		pipe.ZAdd(ctx, indexKey, redis.Z{
			Score:  float64(p.RegisteredAt.UnixNano()),
			Member: p.ID,
		})
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}

	return nil
}

// GetParticipant retrieves a participant by ID from Redis
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID cannot be empty")
	}

	participantKey := Key(input.ParticipantID)
	participantJSON, err := r.client.Get(ctx, participantKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	var p models.Participant
	if err := json.Unmarshal([]byte(participantJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &p, nil
}

// ListParticipants retrieves all participants for a hackathon in
// registration order
func (r *redisRepository) ListParticipants(ctx context.Context, input *ListParticipantsInput) ([]*models.Participant, error) {
	if input == nil || input.HackathonID == "" {
		return nil, errors.New("input and hackathon ID cannot be empty")
	}

	indexKey := fmt.Sprintf("%s%s", participantIndexPrefix, input.HackathonID)
	participantIDs, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participant IDs: %w", err)
	}

	if len(participantIDs) == 0 {
		return []*models.Participant{}, nil
	}

	// Fetch all participants in one round trip
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(participantIDs))

	for _, id := range participantIDs {
		commands = append(commands, pipe.Get(ctx, Key(id)))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	participants := make([]*models.Participant, 0, len(participantIDs))
	for i, cmd := range commands {
		participantJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Participant was deleted between reading the index and
				// fetching the record
				continue
			}
			return nil, fmt.Errorf("failed to get participant %s: %w", participantIDs[i], err)
		}

		var p models.Participant
		if err := json.Unmarshal([]byte(participantJSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participant %s: %w", participantIDs[i], err)
		}

		participants = append(participants, &p)
	}

	return participants, nil
}

// ListEligibleParticipants retrieves approved participants with no team
// assignment, in registration order
func (r *redisRepository) ListEligibleParticipants(ctx context.Context, input *ListEligibleParticipantsInput) ([]*models.Participant, error) {
	if input == nil || input.HackathonID == "" {
		return nil, errors.New("input and hackathon ID cannot be empty")
	}

	all, err := r.ListParticipants(ctx, &ListParticipantsInput{
		HackathonID: input.HackathonID,
	})
	if err != nil {
		return nil, err
	}

	eligible := make([]*models.Participant, 0, len(all))
	for _, p := range all {
		if p.Status == models.ApprovalStatusApproved && p.TeamID == "" {
			eligible = append(eligible, p)
		}
	}

	return eligible, nil
}
