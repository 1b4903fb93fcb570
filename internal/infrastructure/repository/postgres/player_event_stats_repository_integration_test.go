//go:build integration

package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/riskibarqy/hockey-league/internal/domain/playerstats"
	"github.com/riskibarqy/hockey-league/internal/domain/scoreevent"
	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/require"
)

func TestPlayerEventStatsRepository_GetOrCreateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerEventStatsRepository(testDB)

	first, err := repo.GetOrCreate(ctx, "pes-"+t.Name()+"-1", "player-idem", "event-idem")
	require.NoError(t, err)
	second, err := repo.GetOrCreate(ctx, "pes-"+t.Name()+"-2", "player-idem", "event-idem")
	require.NoError(t, err)
	require.Equal(t, first, second)

	row, ok, err := repo.GetByPlayerAndEvent(ctx, "player-idem", "event-idem")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, row.GoalsTotal)
	require.Equal(t, 0, row.AssistsTotal)
}

func TestPlayerEventStatsRepository_ConcurrentGetOrCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerEventStatsRepository(testDB)

	var (
		mu  sync.Mutex
		ids = map[string]struct{}{}
		wg  conc.WaitGroup
	)
	for i := 0; i < 8; i++ {
		i := i
		wg.Go(func() {
			id, err := repo.GetOrCreate(ctx, fmt.Sprintf("pes-race-%d", i), "player-race", "event-race")
			if err != nil {
				t.Errorf("get or create: %v", err)
				return
			}
			mu.Lock()
			ids[id] = struct{}{}
			mu.Unlock()
		})
	}
	wg.Wait()

	require.Len(t, ids, 1)
}

func TestPlayerEventStatsRepository_UpdateDeleteRecreate(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerEventStatsRepository(testDB)

	id, err := repo.GetOrCreate(ctx, "pes-udr-1", "player-udr", "event-udr")
	require.NoError(t, err)

	updated, err := repo.Update(ctx, id, 4, 7)
	require.NoError(t, err)
	require.True(t, updated)

	missing, err := repo.Update(ctx, "pes-does-not-exist", 1, 1)
	require.NoError(t, err)
	require.False(t, missing)

	deleted, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	require.True(t, deleted)

	deletedAgain, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	require.False(t, deletedAgain)

	recreated, err := repo.GetOrCreate(ctx, "pes-udr-2", "player-udr", "event-udr")
	require.NoError(t, err)
	require.Equal(t, "pes-udr-2", recreated)
}

func TestPlayerEventStatsRepository_ComputedCounts(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedgerRepository(testDB)
	repo := NewPlayerEventStatsRepository(testDB)
	m := seedMatch(t, "event-computed", 0, 0)

	scorer, assist := "player-c1", "player-c2"
	err := ledger.WithinTx(ctx, func(ctx context.Context, tx scoreevent.LedgerTx) error {
		for i := 0; i < 2; i++ {
			if _, err := tx.InsertScoreEvent(ctx, scoreevent.ScoreEvent{
				ID:        fmt.Sprintf("se-%s-%d", m.ID, i),
				MatchID:   m.ID,
				TeamID:    m.HomeTeamID,
				ScorerID:  &scorer,
				Assist1ID: &assist,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	counts, err := repo.ComputedCounts(ctx, scorer, "event-computed")
	require.NoError(t, err)
	require.Equal(t, playerstats.Counts{Goals: 2}, counts)

	counts, err = repo.ComputedCounts(ctx, assist, "event-computed")
	require.NoError(t, err)
	require.Equal(t, playerstats.Counts{Assists: 2}, counts)
}
