package match

import "strings"

const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
	StatusCancelled  = "cancelled"
	StatusPostponed  = "postponed"
)

// Side identifies the home or away half of a match.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Match is one game between two teams. Only the unidentified goal counters are
// mutated by the scoring ledger; everything else is owned by match administration.
type Match struct {
	ID                    string
	EventID               string
	HomeTeamID            string
	AwayTeamID            string
	HomeScoreUnidentified int
	AwayScoreUnidentified int
	Status                string
}

// Counters is the ledger view of a match.
type Counters struct {
	MatchID          string
	EventID          string
	HomeTeamID       string
	AwayTeamID       string
	HomeUnidentified int
	AwayUnidentified int
}

// SideOf resolves which side teamID plays on. The second return value is false
// when the team does not take part in the match.
func (c Counters) SideOf(teamID string) (Side, bool) {
	switch strings.TrimSpace(teamID) {
	case "":
		return "", false
	case c.HomeTeamID:
		return SideHome, true
	case c.AwayTeamID:
		return SideAway, true
	default:
		return "", false
	}
}

// Unidentified returns the counter for side.
func (c Counters) Unidentified(side Side) int {
	if side == SideHome {
		return c.HomeUnidentified
	}
	return c.AwayUnidentified
}

// SideScore splits one side's total into identified events and unidentified goals.
type SideScore struct {
	TeamID       string
	Identified   int
	Unidentified int
}

func (s SideScore) Total() int {
	return s.Identified + s.Unidentified
}

// Score is a consistent snapshot of both sides of a match.
type Score struct {
	MatchID string
	Home    SideScore
	Away    SideScore
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsValidStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusScheduled, StatusInProgress, StatusFinished, StatusCancelled, StatusPostponed:
		return true
	default:
		return false
	}
}
