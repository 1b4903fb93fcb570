//go:build integration

package postgres

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/scoreevent"
	"github.com/sourcegraph/conc"
)

var errRollback = errors.New("rollback")

func TestLedgerRepository_ConditionalDecrement(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository(testDB)
	m := seedMatch(t, "event-decrement", 1, 0)

	var first, second bool
	err := repo.WithinTx(ctx, func(ctx context.Context, tx scoreevent.LedgerTx) error {
		var err error
		if first, err = tx.AdjustUnidentified(ctx, m.ID, match.SideHome, -1); err != nil {
			return err
		}
		second, err = tx.AdjustUnidentified(ctx, m.ID, match.SideHome, -1)
		return err
	})
	if err != nil {
		t.Fatalf("within tx: %v", err)
	}
	if !first || second {
		t.Fatalf("expected first decrement applied and second rejected, got %v %v", first, second)
	}

	score, ok, err := repo.GetMatchScore(ctx, m.ID)
	if err != nil || !ok {
		t.Fatalf("get match score: ok=%v err=%v", ok, err)
	}
	if score.Home.Unidentified != 0 {
		t.Fatalf("expected home unidentified 0, got %d", score.Home.Unidentified)
	}
}

func TestLedgerRepository_RollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository(testDB)
	m := seedMatch(t, "event-rollback", 0, 0)

	err := repo.WithinTx(ctx, func(ctx context.Context, tx scoreevent.LedgerTx) error {
		if _, err := tx.AdjustUnidentified(ctx, m.ID, match.SideAway, 1); err != nil {
			return err
		}
		if _, err := tx.InsertScoreEvent(ctx, scoreevent.ScoreEvent{ID: "se-" + m.ID, MatchID: m.ID, TeamID: m.AwayTeamID}); err != nil {
			return err
		}
		return errRollback
	})
	if !errors.Is(err, errRollback) {
		t.Fatalf("expected rollback error, got %v", err)
	}

	score, _, err := repo.GetMatchScore(ctx, m.ID)
	if err != nil {
		t.Fatalf("get match score: %v", err)
	}
	want := match.Score{
		MatchID: m.ID,
		Home:    match.SideScore{TeamID: m.HomeTeamID},
		Away:    match.SideScore{TeamID: m.AwayTeamID},
	}
	if diff := cmp.Diff(want, score); diff != "" {
		t.Fatalf("score mismatch (-want +got):\n%s", diff)
	}
}

func TestLedgerRepository_InsertUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository(testDB)
	m := seedMatch(t, "event-crud", 0, 0)

	period := scoreevent.PeriodSecond
	minutes, seconds := 12, 5
	scorer, assist := "p-scorer", "p-assist"
	goalType := scoreevent.GoalTypePowerPlay
	eventID := "se-" + m.ID

	err := repo.WithinTx(ctx, func(ctx context.Context, tx scoreevent.LedgerTx) error {
		id, err := tx.InsertScoreEvent(ctx, scoreevent.ScoreEvent{
			ID:          eventID,
			MatchID:     m.ID,
			TeamID:      m.HomeTeamID,
			ScorerID:    &scorer,
			Assist1ID:   &assist,
			Period:      &period,
			TimeMinutes: &minutes,
			TimeSeconds: &seconds,
			GoalType:    &goalType,
		})
		if err != nil {
			return err
		}
		if id != eventID {
			t.Errorf("expected inserted id %s, got %s", eventID, id)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	items, err := repo.ListByMatch(ctx, m.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].ScorerID == nil || *items[0].ScorerID != scorer || items[0].Assist2ID != nil {
		t.Fatalf("unexpected listed events: %+v", items)
	}

	err = repo.WithinTx(ctx, func(ctx context.Context, tx scoreevent.LedgerTx) error {
		event, ok, err := tx.GetScoreEvent(ctx, eventID)
		if err != nil || !ok {
			t.Fatalf("get score event: ok=%v err=%v", ok, err)
		}
		event.Assist1ID = nil
		event.GoalType = nil
		updated, err := tx.UpdateScoreEvent(ctx, event)
		if err != nil {
			return err
		}
		if !updated {
			t.Errorf("expected update to apply")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	var deleted scoreevent.Deleted
	var existed, again bool
	err = repo.WithinTx(ctx, func(ctx context.Context, tx scoreevent.LedgerTx) error {
		var err error
		if deleted, existed, err = tx.DeleteScoreEvent(ctx, eventID); err != nil {
			return err
		}
		_, again, err = tx.DeleteScoreEvent(ctx, eventID)
		return err
	})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !existed || again {
		t.Fatalf("expected first delete true and second false, got %v %v", existed, again)
	}
	if deleted.MatchID != m.ID || deleted.TeamID != m.HomeTeamID {
		t.Fatalf("unexpected deleted descriptor: %+v", deleted)
	}

	items, err = repo.ListByMatch(ctx, m.ID)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no live events, got %d", len(items))
	}
}

func TestLedgerRepository_ConcurrentDecrementsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository(testDB)
	m := seedMatch(t, "event-race", 3, 0)

	var applied atomic.Int32
	var wg conc.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Go(func() {
			err := repo.WithinTx(ctx, func(ctx context.Context, tx scoreevent.LedgerTx) error {
				ok, err := tx.AdjustUnidentified(ctx, m.ID, match.SideHome, -1)
				if ok {
					applied.Add(1)
				}
				return err
			})
			if err != nil {
				t.Errorf("within tx: %v", err)
			}
		})
	}
	wg.Wait()

	if got := applied.Load(); got != 3 {
		t.Fatalf("expected exactly 3 decrements to apply, got %d", got)
	}
}
