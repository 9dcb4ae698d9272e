package score

import "github.com/hackboard/hackboard/internal/models"

type SaveScoreRecordInput struct {
	Record *models.ScoreRecord
}

type ListScoreRecordsInput struct {
	HackathonID string
}
