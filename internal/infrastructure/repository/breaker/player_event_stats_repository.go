package breaker

import (
	"context"

	"github.com/riskibarqy/hockey-league/internal/domain/playerstats"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
	"github.com/riskibarqy/hockey-league/internal/platform/resilience"
)

type PlayerEventStatsRepository struct {
	next  playerstats.Repository
	guard guard
}

func NewPlayerEventStatsRepository(next playerstats.Repository, breaker *resilience.CircuitBreaker, logger *logging.Logger) *PlayerEventStatsRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerEventStatsRepository{
		next:  next,
		guard: guard{name: "player_event_stats", breaker: breaker, logger: logger.Named("breaker")},
	}
}

func (r *PlayerEventStatsRepository) GetOrCreate(ctx context.Context, newID, playerID, eventID string) (string, error) {
	var id string
	err := r.guard.do(ctx, "GetOrCreate", func() error {
		var err error
		id, err = r.next.GetOrCreate(ctx, newID, playerID, eventID)
		return err
	})
	return id, err
}

func (r *PlayerEventStatsRepository) GetByPlayerAndEvent(ctx context.Context, playerID, eventID string) (playerstats.EventStats, bool, error) {
	var (
		row    playerstats.EventStats
		exists bool
	)
	err := r.guard.do(ctx, "GetByPlayerAndEvent", func() error {
		var err error
		row, exists, err = r.next.GetByPlayerAndEvent(ctx, playerID, eventID)
		return err
	})
	return row, exists, err
}

func (r *PlayerEventStatsRepository) Update(ctx context.Context, id string, goalsTotal, assistsTotal int) (bool, error) {
	var updated bool
	err := r.guard.do(ctx, "Update", func() error {
		var err error
		updated, err = r.next.Update(ctx, id, goalsTotal, assistsTotal)
		return err
	})
	return updated, err
}

func (r *PlayerEventStatsRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := r.guard.do(ctx, "Delete", func() error {
		var err error
		deleted, err = r.next.Delete(ctx, id)
		return err
	})
	return deleted, err
}

func (r *PlayerEventStatsRepository) ComputedCounts(ctx context.Context, playerID, eventID string) (playerstats.Counts, error) {
	var counts playerstats.Counts
	err := r.guard.do(ctx, "ComputedCounts", func() error {
		var err error
		counts, err = r.next.ComputedCounts(ctx, playerID, eventID)
		return err
	})
	return counts, err
}
