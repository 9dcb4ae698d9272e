package team

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hackboard/hackboard/internal/models"
	participantRepo "github.com/hackboard/hackboard/internal/repositories/participant"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	teamKeyPrefix   = "team:"
	teamIndexPrefix = "hackathon:teams:" // Per-hackathon ordinal index
)

// ErrTeamNotFound is returned when a team is not found
var ErrTeamNotFound = errors.New("team not found")

// Config holds configuration for the Redis team repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed team repository
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

// CreateTeams persists a batch of teams and assigns every member's team
// reference. All writes go through one MULTI/EXEC so a failure leaves
// no partially-assigned participants behind.
func (r *redisRepository) CreateTeams(ctx context.Context, input *CreateTeamsInput) (*CreateTeamsOutput, error) {
	if input == nil || len(input.Teams) == 0 {
		return nil, errors.New("input and teams cannot be empty")
	}

	for _, t := range input.Teams {
		if t == nil || t.ID == "" || t.HackathonID == "" {
			return nil, errors.New("every team needs an ID and hackathon ID")
		}
		if t.Number < 1 {
			return nil, fmt.Errorf("team %s has invalid number %d", t.ID, t.Number)
		}
	}

	// Read every member record up front; the formation service
	// serializes runs per hackathon, so nothing mutates these records
	// between the read and the write below.
	members := make(map[string]*models.Participant)
	for _, t := range input.Teams {
		for _, memberID := range t.MemberIDs {
			memberJSON, err := r.client.Get(ctx, participantRepo.Key(memberID)).Result()
			if err != nil {
				if err == redis.Nil {
					return nil, fmt.Errorf("member %s of team %s: %w", memberID, t.ID, participantRepo.ErrParticipantNotFound)
				}
				return nil, fmt.Errorf("failed to get member %s: %w", memberID, err)
			}

			var p models.Participant
			if err := json.Unmarshal([]byte(memberJSON), &p); err != nil {
				return nil, fmt.Errorf("failed to unmarshal member %s: %w", memberID, err)
			}

			if p.TeamID != "" {
				return nil, fmt.Errorf("member %s already belongs to team %s", memberID, p.TeamID)
			}

			p.TeamID = t.ID
			p.UpdatedAt = t.CreatedAt
			members[memberID] = &p
		}
	}

	pipe := r.client.TxPipeline()

	for _, t := range input.Teams {
		teamJSON, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal team %s: %w", t.ID, err)
		}

		pipe.Set(ctx, fmt.Sprintf("%s%s", teamKeyPrefix, t.ID), teamJSON, 0)
		pipe.ZAdd(ctx, fmt.Sprintf("%s%s", teamIndexPrefix, t.HackathonID), redis.Z{
			Score:  float64(t.Number),
			Member: t.ID,
		})
	}

	for memberID, p := range members {
		memberJSON, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal member %s: %w", memberID, err)
		}
		pipe.Set(ctx, participantRepo.Key(memberID), memberJSON, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create teams: %w", err)
	}

	return &CreateTeamsOutput{
		TeamsCreated: len(input.Teams),
	}, nil
}

// GetTeam retrieves a team by ID from Redis
func (r *redisRepository) GetTeam(ctx context.Context, input *GetTeamInput) (*models.Team, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.New("input and team ID cannot be empty")
	}

	teamJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", teamKeyPrefix, input.TeamID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	var t models.Team
	if err := json.Unmarshal([]byte(teamJSON), &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team: %w", err)
	}

	return &t, nil
}

// ListTeams retrieves all teams for a hackathon in ordinal order
func (r *redisRepository) ListTeams(ctx context.Context, input *ListTeamsInput) ([]*models.Team, error) {
	if input == nil || input.HackathonID == "" {
		return nil, errors.New("input and hackathon ID cannot be empty")
	}

	indexKey := fmt.Sprintf("%s%s", teamIndexPrefix, input.HackathonID)
	teamIDs, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get team IDs: %w", err)
	}

	if len(teamIDs) == 0 {
		return []*models.Team{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(teamIDs))

	for _, id := range teamIDs {
		commands = append(commands, pipe.Get(ctx, fmt.Sprintf("%s%s", teamKeyPrefix, id)))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	teams := make([]*models.Team, 0, len(teamIDs))
	for i, cmd := range commands {
		teamJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get team %s: %w", teamIDs[i], err)
		}

		var t models.Team
		if err := json.Unmarshal([]byte(teamJSON), &t); err != nil {
			return nil, fmt.Errorf("failed to unmarshal team %s: %w", teamIDs[i], err)
		}

		teams = append(teams, &t)
	}

	return teams, nil
}

// CountTeams returns the number of teams for a hackathon
func (r *redisRepository) CountTeams(ctx context.Context, input *CountTeamsInput) (int, error) {
	if input == nil || input.HackathonID == "" {
		return 0, errors.New("input and hackathon ID cannot be empty")
	}

	count, err := r.client.ZCard(ctx, fmt.Sprintf("%s%s", teamIndexPrefix, input.HackathonID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}

	return int(count), nil
}

// SetTeamIdea records a team's submitted idea
func (r *redisRepository) SetTeamIdea(ctx context.Context, input *SetTeamIdeaInput) error {
	if input == nil || input.TeamID == "" {
		return errors.New("input and team ID cannot be empty")
	}

	t, err := r.GetTeam(ctx, &GetTeamInput{TeamID: input.TeamID})
	if err != nil {
		return err
	}

	t.IdeaTitle = input.IdeaTitle
	t.IdeaDescription = input.IdeaDescription
	t.UpdatedAt = time.Now()

	teamJSON, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal team: %w", err)
	}

	if err := r.client.Set(ctx, fmt.Sprintf("%s%s", teamKeyPrefix, t.ID), teamJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save team idea: %w", err)
	}

	return nil
}

// DeleteAllTeams removes every team for a hackathon and clears each
// member's team reference. Deletes and member updates share one
// MULTI/EXEC.
func (r *redisRepository) DeleteAllTeams(ctx context.Context, input *DeleteAllTeamsInput) (*DeleteAllTeamsOutput, error) {
	if input == nil || input.HackathonID == "" {
		return nil, errors.New("input and hackathon ID cannot be empty")
	}

	teams, err := r.ListTeams(ctx, &ListTeamsInput{HackathonID: input.HackathonID})
	if err != nil {
		return nil, err
	}

	if len(teams) == 0 {
		return &DeleteAllTeamsOutput{}, nil
	}

	now := time.Now()
	unassigned := make([]*models.Participant, 0)

	for _, t := range teams {
		for _, memberID := range t.MemberIDs {
			memberJSON, err := r.client.Get(ctx, participantRepo.Key(memberID)).Result()
			if err != nil {
				if err == redis.Nil {
					continue
				}
				return nil, fmt.Errorf("failed to get member %s: %w", memberID, err)
			}

			var p models.Participant
			if err := json.Unmarshal([]byte(memberJSON), &p); err != nil {
				return nil, fmt.Errorf("failed to unmarshal member %s: %w", memberID, err)
			}

			p.TeamID = ""
			p.UpdatedAt = now
			unassigned = append(unassigned, &p)
		}
	}

	pipe := r.client.TxPipeline()

	for _, t := range teams {
		pipe.Del(ctx, fmt.Sprintf("%s%s", teamKeyPrefix, t.ID))
	}
	pipe.Del(ctx, fmt.Sprintf("%s%s", teamIndexPrefix, input.HackathonID))

	for _, p := range unassigned {
		memberJSON, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal member %s: %w", p.ID, err)
		}
		pipe.Set(ctx, participantRepo.Key(p.ID), memberJSON, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete teams: %w", err)
	}

	return &DeleteAllTeamsOutput{
		TeamsDeleted:           len(teams),
		ParticipantsUnassigned: len(unassigned),
	}, nil
}
