package models

import (
	"time"
)

// ScoreRecord represents a single judge's score for a team on one
// criterion
type ScoreRecord struct {
	// ID is the unique identifier for the score record
	ID string

	// HackathonID is the hackathon the score belongs to
	HackathonID string

	// TeamID is the team being scored
	TeamID string

	// JudgeID identifies the judge who submitted the score
	JudgeID string

	// Criterion is the judging criterion being scored
	Criterion string

	// Value is the numeric score
	Value float64

	// CreatedAt is when the score was recorded
	CreatedAt time.Time
}

// TeamRanking is a derived view of a team's standing, recomputed on
// demand from score records and never stored
type TeamRanking struct {
	// TeamID is the ranked team
	TeamID string

	// TeamName is the team's display name
	TeamName string

	// TotalScore is the sum of the team's score records
	TotalScore float64

	// Rank is the team's 1-based position, highest total first
	Rank int
}
