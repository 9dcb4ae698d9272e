package score

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hackboard/hackboard/internal/repositories/score Repository

import (
	"context"

	"github.com/hackboard/hackboard/internal/models"
)

// Repository defines the interface for score record persistence
type Repository interface {
	// SaveScoreRecord appends a judge's score for a team
	SaveScoreRecord(ctx context.Context, input *SaveScoreRecordInput) error

	// ListScoreRecords retrieves all score records for a hackathon
	ListScoreRecords(ctx context.Context, input *ListScoreRecordsInput) ([]*models.ScoreRecord, error)
}
