package roster

import (
	"fmt"
	"testing"

	"github.com/hackboard/hackboard/internal/models"
	"github.com/stretchr/testify/suite"
)

type FormerTestSuite struct {
	suite.Suite
	former *Former
}

func (s *FormerTestSuite) SetupTest() {
	s.former = New(&Config{
		TeamSize:    4,
		DefaultRole: "Developer",
	})
}

func TestFormerTestSuite(t *testing.T) {
	suite.Run(t, new(FormerTestSuite))
}

// participantsWithRoles builds participants p1..pn with the given roles
func participantsWithRoles(roles []string) []*models.Participant {
	participants := make([]*models.Participant, 0, len(roles))
	for i, role := range roles {
		participants = append(participants, &models.Participant{
			ID:   fmt.Sprintf("p%d", i+1),
			Name: fmt.Sprintf("Participant %d", i+1),
			Role: role,
		})
	}
	return participants
}

func (s *FormerTestSuite) TestFormEmptyInput() {
	drafts := s.former.Form(nil)
	s.Empty(drafts)

	drafts = s.former.Form([]*models.Participant{})
	s.Empty(drafts)
}

func (s *FormerTestSuite) TestFormTenParticipantsThreeTeams() {
	// ceil(10/4) = 3 teams, all non-empty, 10 members total
	participants := participantsWithRoles([]string{"A", "A", "A", "B", "B", "C", "C", "C", "C", "D"})

	drafts := s.former.Form(participants)
	s.Require().Len(drafts, 3)

	total := 0
	seen := make(map[string]bool)
	for _, d := range drafts {
		s.NotEmpty(d.Members)
		total += len(d.Members)
		for _, m := range d.Members {
			s.False(seen[m.ID], "participant %s assigned twice", m.ID)
			seen[m.ID] = true
		}
	}
	s.Equal(10, total)
}

func (s *FormerTestSuite) TestFormDraftNumbersAreContiguous() {
	participants := participantsWithRoles([]string{"A", "B", "C", "D", "A", "B", "C", "D"})

	drafts := s.former.Form(participants)
	s.Require().Len(drafts, 2)
	s.Equal(1, drafts[0].Number)
	s.Equal(2, drafts[1].Number)
}

func (s *FormerTestSuite) TestFormInterleavesRolesAcrossTeams() {
	// Four distinct single-member roles across two teams: each team's
	// first member must come from a different role bucket.
	participants := participantsWithRoles([]string{"A", "B", "C", "D"})

	drafts := s.former.Form(participants)
	s.Require().Len(drafts, 1)

	// With a smaller team size the same input spans two teams.
	former := New(&Config{TeamSize: 2})
	drafts = former.Form(participants)
	s.Require().Len(drafts, 2)
	s.NotEqual(drafts[0].Members[0].Role, drafts[1].Members[0].Role)
}

func (s *FormerTestSuite) TestFormBucketDrainOrder() {
	// Buckets drain in first-encountered role order with a rotating
	// cursor: A,A,B,C with teamSize 2 gives team1=[A,B] team2=[A,C].
	participants := participantsWithRoles([]string{"A", "A", "B", "C"})

	former := New(&Config{TeamSize: 2})
	drafts := former.Form(participants)
	s.Require().Len(drafts, 2)

	s.Equal([]string{"p1", "p3"}, memberIDs(drafts[0]))
	s.Equal([]string{"p2", "p4"}, memberIDs(drafts[1]))
}

func (s *FormerTestSuite) TestFormDeterministic() {
	participants := participantsWithRoles([]string{"A", "B", "A", "C", "B", "A"})

	first := s.former.Form(participants)
	second := s.former.Form(participants)

	s.Require().Len(second, len(first))
	for i := range first {
		s.Equal(memberIDs(first[i]), memberIDs(second[i]))
	}
}

func (s *FormerTestSuite) TestFormDefaultsEmptyRole() {
	// Unset roles fall back to the default role bucket
	participants := participantsWithRoles([]string{"", "Designer", ""})

	former := New(&Config{TeamSize: 1, DefaultRole: "Developer"})
	drafts := former.Form(participants)
	s.Require().Len(drafts, 3)

	// p1 and p3 share the default bucket, so they land on teams 1 and 3
	// with the designer interleaved between them
	s.Equal([]string{"p1"}, memberIDs(drafts[0]))
	s.Equal([]string{"p3"}, memberIDs(drafts[1]))
	s.Equal([]string{"p2"}, memberIDs(drafts[2]))
}

func (s *FormerTestSuite) TestFormFewerParticipantsThanTeamSize() {
	participants := participantsWithRoles([]string{"A", "B"})

	drafts := s.former.Form(participants)
	s.Require().Len(drafts, 1)
	s.Len(drafts[0].Members, 2)
}

func (s *FormerTestSuite) TestFormSizeMultisetStableAcrossRuns() {
	participants := participantsWithRoles([]string{"A", "A", "B", "B", "C", "C", "D"})

	sizes := func(drafts []*Draft) []int {
		out := make([]int, 0, len(drafts))
		for _, d := range drafts {
			out = append(out, len(d.Members))
		}
		return out
	}

	first := s.former.Form(participants)
	second := s.former.Form(participants)
	s.Equal(sizes(first), sizes(second))
}

func memberIDs(d *Draft) []string {
	ids := make([]string, 0, len(d.Members))
	for _, m := range d.Members {
		ids = append(ids, m.ID)
	}
	return ids
}
