package roster

import (
	"github.com/hackboard/hackboard/internal/models"
)

// Draft is an in-memory, not-yet-persisted team grouping produced by
// the former
type Draft struct {
	// Number is the draft's 1-based ordinal
	Number int

	// Members contains the assigned participants in assignment order
	Members []*models.Participant
}

// Former partitions participants into role-balanced teams
type Former struct {
	teamSize    int
	defaultRole string
}

// Config for the team former
type Config struct {
	// TeamSize is the target number of members per team
	TeamSize int

	// DefaultRole is used for participants with no declared role
	DefaultRole string
}

// New creates a new team former
func New(cfg *Config) *Former {
	teamSize := 4
	defaultRole := "Developer"

	if cfg != nil {
		if cfg.TeamSize > 0 {
			teamSize = cfg.TeamSize
		}
		if cfg.DefaultRole != "" {
			defaultRole = cfg.DefaultRole
		}
	}

	return &Former{
		teamSize:    teamSize,
		defaultRole: defaultRole,
	}
}

// Form partitions the participants into ceil(n/teamSize) drafts,
// interleaving roles round-robin across drafts so each team gets the
// widest role spread the input allows. Participants are grouped into
// role buckets in first-encountered order, then popped bucket by
// bucket onto a cursor that rotates across the drafts.
//
// The result contains only non-empty drafts; an empty input produces
// an empty slice. Given a stable input order the partition is
// deterministic.
func (f *Former) Form(participants []*models.Participant) []*Draft {
	if len(participants) == 0 {
		return []*Draft{}
	}

	teamCount := (len(participants) + f.teamSize - 1) / f.teamSize

	drafts := make([]*Draft, teamCount)
	for i := range drafts {
		drafts[i] = &Draft{
			Number: i + 1,
		}
	}

	// Bucket participants by role, preserving both the order roles are
	// first seen and the order of participants within each role.
	var roleOrder []string
	buckets := make(map[string][]*models.Participant)

	for _, p := range participants {
		role := p.Role
		if role == "" {
			role = f.defaultRole
		}

		if _, seen := buckets[role]; !seen {
			roleOrder = append(roleOrder, role)
		}
		buckets[role] = append(buckets[role], p)
	}

	// Drain the buckets onto a rotating team cursor. Iterating roles in
	// first-seen order means the first teamCount assignments each come
	// from a distinct role whenever enough distinct roles exist.
	cursor := 0
	for _, role := range roleOrder {
		for _, p := range buckets[role] {
			drafts[cursor].Members = append(drafts[cursor].Members, p)
			cursor = (cursor + 1) % teamCount
		}
	}

	// A draft can only end up empty when the input was smaller than
	// expected; callers must handle a zero-draft result.
	result := make([]*Draft, 0, teamCount)
	for _, d := range drafts {
		if len(d.Members) > 0 {
			result = append(result, d)
		}
	}

	return result
}
