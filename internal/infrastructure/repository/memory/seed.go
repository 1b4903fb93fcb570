package memory

import "github.com/riskibarqy/hockey-league/internal/domain/match"

const (
	EventIDWinterCup = "winter-cup-2025"

	TeamIDNorthStars  = "team-north-stars"
	TeamIDIceHawks    = "team-ice-hawks"
	TeamIDBlueLine    = "team-blue-line"
	TeamIDRiverWolves = "team-river-wolves"
)

// SeedMatches returns the fixtures served by STORAGE_DRIVER=memory.
func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:         "match-wc-001",
			EventID:    EventIDWinterCup,
			HomeTeamID: TeamIDNorthStars,
			AwayTeamID: TeamIDIceHawks,
			Status:     match.StatusScheduled,
		},
		{
			ID:         "match-wc-002",
			EventID:    EventIDWinterCup,
			HomeTeamID: TeamIDBlueLine,
			AwayTeamID: TeamIDRiverWolves,
			Status:     match.StatusScheduled,
		},
		{
			ID:                    "match-wc-003",
			EventID:               EventIDWinterCup,
			HomeTeamID:            TeamIDIceHawks,
			AwayTeamID:            TeamIDBlueLine,
			HomeScoreUnidentified: 2,
			AwayScoreUnidentified: 1,
			Status:                match.StatusInProgress,
		},
	}
}
