package breaker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/scoreevent"
	"github.com/riskibarqy/hockey-league/internal/infrastructure/repository/memory"
	playerstatsmock "github.com/riskibarqy/hockey-league/internal/mocks/domain/playerstats"
	scoreeventmock "github.com/riskibarqy/hockey-league/internal/mocks/domain/scoreevent"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
	"github.com/riskibarqy/hockey-league/internal/platform/resilience"
	"github.com/riskibarqy/hockey-league/internal/usecase"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPlayerEventStatsRepository_OpensAfterStorageFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := playerstatsmock.NewRepository(t)
	storageErr := errors.New("dial tcp: connection refused")
	next.
		On("GetOrCreate", mock.Anything, "row-1", "p-1", "winter-cup-2025").
		Return("", storageErr).
		Times(2)

	repo := NewPlayerEventStatsRepository(next, resilience.NewCircuitBreaker(2, time.Minute, 1), logging.NewNop())

	for i := 0; i < 2; i++ {
		_, err := repo.GetOrCreate(ctx, "row-1", "p-1", "winter-cup-2025")
		require.ErrorIs(t, err, storageErr)
	}

	_, err := repo.GetOrCreate(ctx, "row-1", "p-1", "winter-cup-2025")
	require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
}

func TestPlayerEventStatsRepository_RejectionLoggedUnderBreakerName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	core, logs := observer.New(zapcore.DebugLevel)
	next := playerstatsmock.NewRepository(t)
	next.
		On("Update", mock.Anything, "row-1", 1, 0).
		Return(false, errors.New("connection reset")).
		Once()

	repo := NewPlayerEventStatsRepository(next, resilience.NewCircuitBreaker(1, time.Minute, 1), logging.FromZap(zap.New(core)))

	_, err := repo.Update(ctx, "row-1", 1, 0)
	require.Error(t, err)
	_, err = repo.Update(ctx, "row-1", 1, 0)
	require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)

	entries := logs.FilterMessage("storage circuit breaker rejected call").All()
	require.Len(t, entries, 1)
	require.Equal(t, "breaker", entries[0].LoggerName)
	require.Equal(t, "player_event_stats", entries[0].ContextMap()["repository"])
	require.Equal(t, "Update", entries[0].ContextMap()["op"])
}

func TestPlayerEventStatsRepository_CancellationDoesNotTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := playerstatsmock.NewRepository(t)
	next.
		On("Delete", mock.Anything, "row-1").
		Return(false, fmt.Errorf("delete: %w", context.Canceled)).
		Twice()
	next.
		On("Delete", mock.Anything, "row-1").
		Return(true, nil).
		Once()

	repo := NewPlayerEventStatsRepository(next, resilience.NewCircuitBreaker(1, time.Minute, 1), logging.NewNop())

	for i := 0; i < 2; i++ {
		_, err := repo.Delete(ctx, "row-1")
		require.ErrorIs(t, err, context.Canceled)
	}
	deleted, err := repo.Delete(ctx, "row-1")
	require.NoError(t, err)
	require.True(t, deleted)
}

func TestLedgerRepository_BusinessErrorsDoNotTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewStore(memory.SeedMatches())
	breaker := resilience.NewCircuitBreaker(1, time.Minute, 1)
	repo := NewLedgerRepository(memory.NewLedgerRepository(store), breaker, logging.NewNop())
	poolEmpty := errors.New("no unidentified goals available")

	for i := 0; i < 3; i++ {
		err := repo.WithinTx(ctx, func(ctx context.Context, tx scoreevent.LedgerTx) error {
			applied, err := tx.AdjustUnidentified(ctx, "match-wc-001", match.SideHome, -1)
			if err != nil {
				return err
			}
			if !applied {
				return poolEmpty
			}
			return nil
		})
		require.ErrorIs(t, err, poolEmpty)
	}
	require.Equal(t, resilience.CircuitStateClosed, breaker.State())

	score, exists, err := repo.GetMatchScore(ctx, "match-wc-003")
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, 2, score.Home.Unidentified)
}

func TestLedgerRepository_StatementFailureTrips(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := scoreeventmock.NewLedgerRepository(t)
	tx := scoreeventmock.NewLedgerTx(t)
	storageErr := errors.New("pq: terminating connection due to administrator command")

	next.
		On("WithinTx", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context, scoreevent.LedgerTx) error) error {
			return fn(ctx, tx)
		}).
		Once()
	tx.
		On("GetMatchCounters", mock.Anything, "m-1").
		Return(match.Counters{}, false, storageErr).
		Once()

	breaker := resilience.NewCircuitBreaker(1, time.Minute, 1)
	repo := NewLedgerRepository(next, breaker, logging.NewNop())

	err := repo.WithinTx(ctx, func(ctx context.Context, tx scoreevent.LedgerTx) error {
		if _, _, err := tx.GetMatchCounters(ctx, "m-1"); err != nil {
			return fmt.Errorf("get match counters: %w", err)
		}
		return nil
	})
	require.ErrorIs(t, err, storageErr)
	require.Equal(t, resilience.CircuitStateOpen, breaker.State())

	_, err = repo.ListByMatch(ctx, "m-1")
	require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
}

func TestLedgerRepository_CommitFailureTrips(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := scoreeventmock.NewLedgerRepository(t)
	commitErr := errors.New("commit ledger transaction: driver: bad connection")
	next.
		On("WithinTx", mock.Anything, mock.Anything).
		Return(commitErr).
		Once()

	breaker := resilience.NewCircuitBreaker(1, time.Minute, 1)
	repo := NewLedgerRepository(next, breaker, logging.NewNop())

	err := repo.WithinTx(ctx, func(context.Context, scoreevent.LedgerTx) error { return nil })
	require.ErrorIs(t, err, commitErr)
	require.Equal(t, resilience.CircuitStateOpen, breaker.State())
}

func TestNilBreakerPassesThrough(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(memory.SeedMatches())
	repo := NewPlayerEventStatsRepository(memory.NewPlayerEventStatsRepository(store), nil, nil)

	id, err := repo.GetOrCreate(context.Background(), "row-1", "p-1", memory.EventIDWinterCup)
	require.NoError(t, err)
	require.Equal(t, "row-1", id)
}
