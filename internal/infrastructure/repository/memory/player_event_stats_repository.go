package memory

import (
	"context"

	"github.com/riskibarqy/hockey-league/internal/domain/playerstats"
)

type PlayerEventStatsRepository struct {
	store *Store
}

func NewPlayerEventStatsRepository(store *Store) *PlayerEventStatsRepository {
	return &PlayerEventStatsRepository{store: store}
}

func (r *PlayerEventStatsRepository) GetOrCreate(_ context.Context, newID, playerID, eventID string) (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if rec, ok := r.findLive(playerID, eventID); ok {
		return rec.stats.ID, nil
	}

	now := r.store.now()
	r.store.state.stats[newID] = statsRecord{
		stats: playerstats.EventStats{
			ID:        newID,
			PlayerID:  playerID,
			EventID:   eventID,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	return newID, nil
}

func (r *PlayerEventStatsRepository) GetByPlayerAndEvent(_ context.Context, playerID, eventID string) (playerstats.EventStats, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.findLive(playerID, eventID)
	if !ok {
		return playerstats.EventStats{}, false, nil
	}
	return rec.stats, true, nil
}

func (r *PlayerEventStatsRepository) Update(_ context.Context, id string, goalsTotal, assistsTotal int) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.state.stats[id]
	if !ok || rec.deletedAt != nil {
		return false, nil
	}

	rec.stats.GoalsTotal = goalsTotal
	rec.stats.AssistsTotal = assistsTotal
	rec.stats.UpdatedAt = r.store.now()
	r.store.state.stats[id] = rec

	return true, nil
}

func (r *PlayerEventStatsRepository) Delete(_ context.Context, id string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.state.stats[id]
	if !ok || rec.deletedAt != nil {
		return false, nil
	}

	now := r.store.now()
	rec.deletedAt = &now
	r.store.state.stats[id] = rec

	return true, nil
}

func (r *PlayerEventStatsRepository) ComputedCounts(_ context.Context, playerID, eventID string) (playerstats.Counts, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var counts playerstats.Counts
	for _, rec := range r.store.state.events {
		if rec.deletedAt != nil {
			continue
		}
		m, ok := r.store.state.matches[rec.event.MatchID]
		if !ok || m.EventID != eventID {
			continue
		}

		goal, assist := rec.event.Involves(playerID)
		if goal {
			counts.Goals++
		}
		if assist {
			counts.Assists++
		}
	}

	return counts, nil
}

// findLive expects the caller to hold the store lock.
func (r *PlayerEventStatsRepository) findLive(playerID, eventID string) (statsRecord, bool) {
	for _, rec := range r.store.state.stats {
		if rec.deletedAt == nil && rec.stats.PlayerID == playerID && rec.stats.EventID == eventID {
			return rec, true
		}
	}
	return statsRecord{}, false
}
