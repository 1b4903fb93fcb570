package playerstats

import "context"

// Repository persists per player, per event stats rows.
type Repository interface {
	// GetOrCreate returns the id of the (playerID, eventID) row, inserting a
	// zeroed row first if none exists. Safe for concurrent callers.
	GetOrCreate(ctx context.Context, newID, playerID, eventID string) (string, error)
	GetByPlayerAndEvent(ctx context.Context, playerID, eventID string) (EventStats, bool, error)
	Update(ctx context.Context, id string, goalsTotal, assistsTotal int) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	// ComputedCounts derives goals and assists from score events of the
	// event's matches.
	ComputedCounts(ctx context.Context, playerID, eventID string) (Counts, error)
}
