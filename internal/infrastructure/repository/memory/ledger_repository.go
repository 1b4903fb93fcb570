package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/scoreevent"
)

type LedgerRepository struct {
	store *Store
}

func NewLedgerRepository(store *Store) *LedgerRepository {
	return &LedgerRepository{store: store}
}

// WithinTx runs fn against a private copy of the store and publishes the copy
// only when fn succeeds.
func (r *LedgerRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx scoreevent.LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tx := &ledgerTx{state: r.store.state.clone(), now: r.store.now}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	r.store.state = tx.state
	return nil
}

func (r *LedgerRepository) GetMatchScore(_ context.Context, matchID string) (match.Score, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.state.matches[matchID]
	if !ok {
		return match.Score{}, false, nil
	}

	score := match.Score{
		MatchID: m.ID,
		Home:    match.SideScore{TeamID: m.HomeTeamID, Unidentified: m.HomeScoreUnidentified},
		Away:    match.SideScore{TeamID: m.AwayTeamID, Unidentified: m.AwayScoreUnidentified},
	}
	for _, rec := range r.store.state.events {
		if rec.deletedAt != nil || rec.event.MatchID != matchID {
			continue
		}
		switch rec.event.TeamID {
		case m.HomeTeamID:
			score.Home.Identified++
		case m.AwayTeamID:
			score.Away.Identified++
		}
	}

	return score, true, nil
}

func (r *LedgerRepository) ListByMatch(_ context.Context, matchID string) ([]scoreevent.ScoreEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]scoreevent.ScoreEvent, 0)
	for _, rec := range r.store.state.events {
		if rec.deletedAt != nil || rec.event.MatchID != matchID {
			continue
		}
		out = append(out, rec.event)
	}
	sortScoreEvents(out)

	return out, nil
}

type ledgerTx struct {
	state state
	now   func() time.Time
}

func (tx *ledgerTx) GetMatchCounters(_ context.Context, matchID string) (match.Counters, bool, error) {
	m, ok := tx.state.matches[matchID]
	if !ok {
		return match.Counters{}, false, nil
	}

	return match.Counters{
		MatchID:          m.ID,
		EventID:          m.EventID,
		HomeTeamID:       m.HomeTeamID,
		AwayTeamID:       m.AwayTeamID,
		HomeUnidentified: m.HomeScoreUnidentified,
		AwayUnidentified: m.AwayScoreUnidentified,
	}, true, nil
}

func (tx *ledgerTx) AdjustUnidentified(_ context.Context, matchID string, side match.Side, delta int) (bool, error) {
	m, ok := tx.state.matches[matchID]
	if !ok {
		return false, nil
	}

	counter := &m.HomeScoreUnidentified
	if side == match.SideAway {
		counter = &m.AwayScoreUnidentified
	}
	if delta < 0 && *counter+delta < 0 {
		return false, nil
	}
	*counter += delta

	tx.state.matches[matchID] = m
	return true, nil
}

func (tx *ledgerTx) InsertScoreEvent(_ context.Context, event scoreevent.ScoreEvent) (string, error) {
	if _, exists := tx.state.events[event.ID]; exists {
		return "", fmt.Errorf("score event %s already exists", event.ID)
	}

	now := tx.now()
	event.CreatedAt = now
	event.UpdatedAt = now
	tx.state.events[event.ID] = scoreEventRecord{event: event}

	return event.ID, nil
}

func (tx *ledgerTx) GetScoreEvent(_ context.Context, id string) (scoreevent.ScoreEvent, bool, error) {
	rec, ok := tx.state.events[id]
	if !ok || rec.deletedAt != nil {
		return scoreevent.ScoreEvent{}, false, nil
	}
	return rec.event, true, nil
}

func (tx *ledgerTx) UpdateScoreEvent(_ context.Context, event scoreevent.ScoreEvent) (bool, error) {
	rec, ok := tx.state.events[event.ID]
	if !ok || rec.deletedAt != nil {
		return false, nil
	}

	event.MatchID = rec.event.MatchID
	event.TeamID = rec.event.TeamID
	event.CreatedAt = rec.event.CreatedAt
	event.UpdatedAt = tx.now()
	rec.event = event
	tx.state.events[event.ID] = rec

	return true, nil
}

func (tx *ledgerTx) DeleteScoreEvent(_ context.Context, id string) (scoreevent.Deleted, bool, error) {
	rec, ok := tx.state.events[id]
	if !ok || rec.deletedAt != nil {
		return scoreevent.Deleted{}, false, nil
	}

	now := tx.now()
	rec.deletedAt = &now
	tx.state.events[id] = rec

	return scoreevent.Deleted{MatchID: rec.event.MatchID, TeamID: rec.event.TeamID}, true, nil
}

func sortScoreEvents(items []scoreevent.ScoreEvent) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if pa, pb := periodOrder(a), periodOrder(b); pa != pb {
			return pa < pb
		}
		if ta, tb := clockOrder(a), clockOrder(b); ta != tb {
			return ta < tb
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

// Unknown period or time sorts last, matching NULLS LAST in postgres.
func periodOrder(e scoreevent.ScoreEvent) int {
	if e.Period == nil {
		return math.MaxInt
	}
	return int(*e.Period)
}

func clockOrder(e scoreevent.ScoreEvent) int {
	if e.TimeMinutes == nil {
		return math.MaxInt
	}
	seconds := 0
	if e.TimeSeconds != nil {
		seconds = *e.TimeSeconds
	}
	return *e.TimeMinutes*60 + seconds
}
