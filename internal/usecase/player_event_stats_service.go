package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/hockey-league/internal/domain/playerstats"
	idgen "github.com/riskibarqy/hockey-league/internal/platform/id"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
	"github.com/riskibarqy/hockey-league/internal/platform/resilience"
)

const defaultEnsureMaxWorkers = 8

// PlayerEventStatsService owns the one-row-per-(player, event) manual totals.
type PlayerEventStatsService struct {
	statsRepo  playerstats.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
	maxWorkers int
	flight     resilience.SingleFlight[string]
}

func NewPlayerEventStatsService(statsRepo playerstats.Repository, idGen idgen.Generator, logger *logging.Logger, maxWorkers int) *PlayerEventStatsService {
	if logger == nil {
		logger = logging.Default()
	}
	if maxWorkers <= 0 {
		maxWorkers = defaultEnsureMaxWorkers
	}

	return &PlayerEventStatsService{
		statsRepo:  statsRepo,
		idGen:      idGen,
		logger:     logger,
		maxWorkers: maxWorkers,
	}
}

// GetOrCreate returns the id of the live row for (playerID, eventID),
// inserting it with zero totals when absent. Concurrent callers observe the
// same id.
func (s *PlayerEventStatsService) GetOrCreate(ctx context.Context, playerID, eventID string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerEventStatsService.GetOrCreate")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	eventID = strings.TrimSpace(eventID)
	if playerID == "" {
		return "", fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if eventID == "" {
		return "", fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	return s.getOrCreate(ctx, playerID, eventID)
}

// getOrCreate collapses concurrent calls for the same pair inside this
// process; the storage constraint still decides across processes. A caller
// that gives up does not cancel the shared call for the others.
func (s *PlayerEventStatsService) getOrCreate(ctx context.Context, playerID, eventID string) (string, error) {
	key := "player-event-stats:" + eventID + ":" + playerID
	id, err, _ := s.flight.DoContext(ctx, key, func(ctx context.Context) (string, error) {
		newID, err := s.idGen.NewID()
		if err != nil {
			return "", fmt.Errorf("generate player event stats id: %w", err)
		}

		id, err := s.statsRepo.GetOrCreate(ctx, newID, playerID, eventID)
		if err != nil {
			return "", fmt.Errorf("get or create player event stats: %w", err)
		}
		return id, nil
	})
	return id, err
}

// Update sets the manual totals of an existing row. It reports false when the
// row does not exist.
func (s *PlayerEventStatsService) Update(ctx context.Context, id string, goalsTotal, assistsTotal int) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerEventStatsService.Update")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return false, fmt.Errorf("%w: player event stats id is required", ErrInvalidInput)
	}
	if goalsTotal < 0 || assistsTotal < 0 {
		return false, fmt.Errorf("%w: totals must be non-negative", ErrInvalidInput)
	}

	updated, err := s.statsRepo.Update(ctx, id, goalsTotal, assistsTotal)
	if err != nil {
		return false, fmt.Errorf("update player event stats: %w", err)
	}
	if updated {
		s.logger.InfoContext(ctx, "player event stats updated",
			"player_event_stats_id", id,
			"goals_total", goalsTotal,
			"assists_total", assistsTotal,
		)
	}

	return updated, nil
}

func (s *PlayerEventStatsService) Delete(ctx context.Context, id string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerEventStatsService.Delete")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return false, fmt.Errorf("%w: player event stats id is required", ErrInvalidInput)
	}

	deleted, err := s.statsRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete player event stats: %w", err)
	}

	return deleted, nil
}

// GetPlayerEventTotals combines the manual totals with the goals and assists
// recorded as score events in the event's matches.
func (s *PlayerEventStatsService) GetPlayerEventTotals(ctx context.Context, playerID, eventID string) (playerstats.Totals, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerEventStatsService.GetPlayerEventTotals")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	eventID = strings.TrimSpace(eventID)
	if playerID == "" || eventID == "" {
		return playerstats.Totals{}, fmt.Errorf("%w: player id and event id are required", ErrInvalidInput)
	}

	totals := playerstats.Totals{PlayerID: playerID, EventID: eventID}

	row, exists, err := s.statsRepo.GetByPlayerAndEvent(ctx, playerID, eventID)
	if err != nil {
		return playerstats.Totals{}, fmt.Errorf("get player event stats: %w", err)
	}
	if exists {
		totals.StatsID = row.ID
		totals.Manual = playerstats.Counts{Goals: row.GoalsTotal, Assists: row.AssistsTotal}
	}

	computed, err := s.statsRepo.ComputedCounts(ctx, playerID, eventID)
	if err != nil {
		return playerstats.Totals{}, fmt.Errorf("compute player event counts: %w", err)
	}
	totals.Computed = computed

	return totals, nil
}

// EnsureRosterStats runs GetOrCreate for every player of an event and returns
// player id -> row id. Blank and repeated ids are ignored.
func (s *PlayerEventStatsService) EnsureRosterStats(ctx context.Context, eventID string, playerIDs []string) (map[string]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerEventStatsService.EnsureRosterStats")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	players := uniquePlayerIDs(playerIDs)
	if len(players) == 0 {
		return map[string]string{}, nil
	}

	workerCount := s.maxWorkers
	if workerCount > len(players) {
		workerCount = len(players)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu       sync.Mutex
		firstErr error
		workers  sync.WaitGroup
	)
	out := make(map[string]string, len(players))
	for _, playerID := range players {
		playerID := playerID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			id, err := s.getOrCreate(ctx, playerID, eventID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("player %s: %w", playerID, err)
				}
				return
			}
			out[playerID] = id
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	s.logger.InfoContext(ctx, "roster stats ensured",
		"event_id", eventID,
		"players", len(out),
		"workers", workerCount,
	)

	return out, nil
}

func uniquePlayerIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
