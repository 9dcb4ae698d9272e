package dispatch

import (
	"sort"

	"github.com/hackboard/hackboard/internal/models"
)

// rankTeams derives the ranking view from teams and their score
// records: totals descending, ties broken by team number ascending,
// rank is the 1-based sort position. Teams without scores total zero.
func rankTeams(teams []*models.Team, records []*models.ScoreRecord) []*models.TeamRanking {
	totals := make(map[string]float64, len(teams))
	for _, record := range records {
		totals[record.TeamID] += record.Value
	}

	numbers := make(map[string]int, len(teams))
	rankings := make([]*models.TeamRanking, 0, len(teams))
	for _, t := range teams {
		numbers[t.ID] = t.Number
		rankings = append(rankings, &models.TeamRanking{
			TeamID:     t.ID,
			TeamName:   t.Name,
			TotalScore: totals[t.ID],
		})
	}

	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].TotalScore != rankings[j].TotalScore {
			return rankings[i].TotalScore > rankings[j].TotalScore
		}
		return numbers[rankings[i].TeamID] < numbers[rankings[j].TeamID]
	})

	for i, ranking := range rankings {
		ranking.Rank = i + 1
	}

	return rankings
}
