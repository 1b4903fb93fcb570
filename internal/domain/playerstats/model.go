package playerstats

import "time"

// EventStats holds manually entered totals for one player in one competition
// event. At most one live row exists per (PlayerID, EventID).
type EventStats struct {
	ID           string
	PlayerID     string
	EventID      string
	GoalsTotal   int
	AssistsTotal int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Counts is a goals/assists pair.
type Counts struct {
	Goals   int
	Assists int
}

func (c Counts) Points() int {
	return c.Goals + c.Assists
}

// Totals combines manual career totals with totals derived from score events.
type Totals struct {
	PlayerID string
	EventID  string
	StatsID  string
	Manual   Counts
	Computed Counts
}

func (t Totals) Combined() Counts {
	return Counts{
		Goals:   t.Manual.Goals + t.Computed.Goals,
		Assists: t.Manual.Assists + t.Computed.Assists,
	}
}
