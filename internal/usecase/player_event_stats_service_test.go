package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/hockey-league/internal/domain/playerstats"
	"github.com/riskibarqy/hockey-league/internal/infrastructure/repository/memory"
	playerstatsmock "github.com/riskibarqy/hockey-league/internal/mocks/domain/playerstats"
	idgen "github.com/riskibarqy/hockey-league/internal/platform/id"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStatsFixture(t *testing.T) (*PlayerEventStatsService, *ScoreEventService) {
	t.Helper()

	store := memory.NewStore(memory.SeedMatches())
	ids := idgen.NewTimeOrderedGenerator()
	logger := logging.NewNop()

	stats := NewPlayerEventStatsService(memory.NewPlayerEventStatsRepository(store), ids, logger, 4)
	scoreEvents := NewScoreEventService(memory.NewLedgerRepository(store), ids, logger)
	return stats, scoreEvents
}

func TestPlayerEventStatsService_GetOrCreateIsIdempotent(t *testing.T) {
	t.Parallel()

	service, _ := newStatsFixture(t)
	ctx := context.Background()

	first, err := service.GetOrCreate(ctx, "p-1", memory.EventIDWinterCup)
	require.NoError(t, err)
	second, err := service.GetOrCreate(ctx, " p-1 ", memory.EventIDWinterCup)
	require.NoError(t, err)
	require.Equal(t, first, second)

	other, err := service.GetOrCreate(ctx, "p-1", "spring-cup-2026")
	require.NoError(t, err)
	require.NotEqual(t, first, other)
}

func TestPlayerEventStatsService_ConcurrentGetOrCreate(t *testing.T) {
	t.Parallel()

	service, _ := newStatsFixture(t)

	const callers = 16
	ids := make([]string, callers)
	errs := make([]error, callers)

	var wg conc.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Go(func() {
			ids[i], errs[i] = service.GetOrCreate(context.Background(), "p-7", memory.EventIDWinterCup)
		})
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, ids[0], ids[i], "caller %d observed a different row", i)
	}
}

func TestPlayerEventStatsService_UpdateDeleteRecreate(t *testing.T) {
	t.Parallel()

	service, _ := newStatsFixture(t)
	ctx := context.Background()

	id, err := service.GetOrCreate(ctx, "p-2", memory.EventIDWinterCup)
	require.NoError(t, err)

	updated, err := service.Update(ctx, id, 12, 30)
	require.NoError(t, err)
	require.True(t, updated)

	_, err = service.Update(ctx, id, -1, 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	deleted, err := service.Delete(ctx, id)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = service.Delete(ctx, id)
	require.NoError(t, err)
	require.False(t, deleted)

	updated, err = service.Update(ctx, id, 1, 1)
	require.NoError(t, err)
	require.False(t, updated)

	recreated, err := service.GetOrCreate(ctx, "p-2", memory.EventIDWinterCup)
	require.NoError(t, err)
	require.NotEqual(t, id, recreated)

	totals, err := service.GetPlayerEventTotals(ctx, "p-2", memory.EventIDWinterCup)
	require.NoError(t, err)
	require.Equal(t, playerstats.Counts{}, totals.Manual, "recreated row starts from zero")
}

func TestPlayerEventStatsService_GetPlayerEventTotals(t *testing.T) {
	t.Parallel()

	stats, scoreEvents := newStatsFixture(t)
	ctx := context.Background()

	id, err := stats.GetOrCreate(ctx, "p-9", memory.EventIDWinterCup)
	require.NoError(t, err)
	_, err = stats.Update(ctx, id, 5, 2)
	require.NoError(t, err)

	_, err = scoreEvents.IdentifyGoal(ctx, ScoreEventInput{
		MatchID:   "match-wc-003",
		TeamID:    memory.TeamIDIceHawks,
		ScorerID:  strPtr("p-9"),
		Assist1ID: strPtr("p-4"),
	})
	require.NoError(t, err)
	_, err = scoreEvents.CreateScoreEvent(ctx, ScoreEventInput{
		MatchID:   "match-wc-001",
		TeamID:    memory.TeamIDNorthStars,
		ScorerID:  strPtr("p-4"),
		Assist1ID: strPtr("p-8"),
		Assist2ID: strPtr("p-9"),
	})
	require.NoError(t, err)

	got, err := stats.GetPlayerEventTotals(ctx, "p-9", memory.EventIDWinterCup)
	require.NoError(t, err)

	want := playerstats.Totals{
		PlayerID: "p-9",
		EventID:  memory.EventIDWinterCup,
		StatsID:  id,
		Manual:   playerstats.Counts{Goals: 5, Assists: 2},
		Computed: playerstats.Counts{Goals: 1, Assists: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected totals (-want +got):\n%s", diff)
	}
	require.Equal(t, 9, got.Combined().Points())
}

func TestPlayerEventStatsService_EnsureRosterStats(t *testing.T) {
	t.Parallel()

	service, _ := newStatsFixture(t)
	ctx := context.Background()

	existing, err := service.GetOrCreate(ctx, "p-3", memory.EventIDWinterCup)
	require.NoError(t, err)

	roster := []string{"p-3", "p-1", "", "p-2", "p-1", "  p-2  "}
	for i := 0; i < 20; i++ {
		roster = append(roster, fmt.Sprintf("p-%02d", 10+i))
	}

	got, err := service.EnsureRosterStats(ctx, memory.EventIDWinterCup, roster)
	require.NoError(t, err)
	require.Len(t, got, 23)
	require.Equal(t, existing, got["p-3"])

	again, err := service.EnsureRosterStats(ctx, memory.EventIDWinterCup, roster)
	require.NoError(t, err)
	if diff := cmp.Diff(got, again); diff != "" {
		t.Fatalf("second ensure must return the same rows (-first +second):\n%s", diff)
	}

	empty, err := service.EnsureRosterStats(ctx, memory.EventIDWinterCup, []string{" ", ""})
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = service.EnsureRosterStats(ctx, " ", roster)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestPlayerEventStatsService_EnsureRosterStatsFailsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playerstatsmock.NewRepository(t)
	storageErr := errors.New("too many connections")

	repo.
		On("GetOrCreate", mock.Anything, "row-1", "p-1", memory.EventIDWinterCup).
		Return("stats-p-1", nil).
		Maybe()
	repo.
		On("GetOrCreate", mock.Anything, "row-1", "p-2", memory.EventIDWinterCup).
		Return("", storageErr).
		Once()

	service := NewPlayerEventStatsService(repo, fixedIDGenerator{id: "row-1"}, logging.NewNop(), 2)
	_, err := service.EnsureRosterStats(ctx, memory.EventIDWinterCup, []string{"p-2", "p-1"})
	require.ErrorIs(t, err, storageErr)
	require.ErrorContains(t, err, "player p-2")
}

func TestPlayerEventStatsService_GetOrCreatePassesGeneratedIDUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playerstatsmock.NewRepository(t)
	repo.
		On("GetOrCreate", mock.Anything, "row-new", "p-1", memory.EventIDWinterCup).
		Return("row-existing", nil).
		Once()

	service := NewPlayerEventStatsService(repo, fixedIDGenerator{id: "row-new"}, logging.NewNop(), 0)
	got, err := service.GetOrCreate(ctx, "p-1", memory.EventIDWinterCup)
	require.NoError(t, err)
	require.Equal(t, "row-existing", got, "the stored row wins over the generated id")

	_, err = service.GetOrCreate(ctx, "", memory.EventIDWinterCup)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestPlayerEventStatsService_TotalsWithoutRowUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playerstatsmock.NewRepository(t)
	repo.
		On("GetByPlayerAndEvent", mock.Anything, "p-1", memory.EventIDWinterCup).
		Return(playerstats.EventStats{}, false, nil).
		Once()
	repo.
		On("ComputedCounts", mock.Anything, "p-1", memory.EventIDWinterCup).
		Return(playerstats.Counts{Goals: 2, Assists: 3}, nil).
		Once()

	service := NewPlayerEventStatsService(repo, fixedIDGenerator{id: "unused"}, logging.NewNop(), 1)
	got, err := service.GetPlayerEventTotals(ctx, "p-1", memory.EventIDWinterCup)
	require.NoError(t, err)
	require.Empty(t, got.StatsID)
	require.Equal(t, playerstats.Counts{}, got.Manual)
	require.Equal(t, playerstats.Counts{Goals: 2, Assists: 3}, got.Combined())
}

type slowStatsRepository struct {
	playerstats.Repository

	entered chan struct{}
	release chan struct{}
}

func (r *slowStatsRepository) GetOrCreate(ctx context.Context, newID, playerID, eventID string) (string, error) {
	select {
	case r.entered <- struct{}{}:
	default:
	}

	select {
	case <-r.release:
		return "row-" + playerID, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestPlayerEventStatsService_GetOrCreateSurvivesCancelledCaller(t *testing.T) {
	t.Parallel()

	repo := &slowStatsRepository{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	service := NewPlayerEventStatsService(repo, fixedIDGenerator{id: "stats-1"}, logging.NewNop(), 1)

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := service.GetOrCreate(ctxA, "p-1", memory.EventIDWinterCup)
		errA <- err
	}()
	<-repo.entered

	type result struct {
		id  string
		err error
	}
	resB := make(chan result, 1)
	go func() {
		id, err := service.GetOrCreate(context.Background(), "p-1", memory.EventIDWinterCup)
		resB <- result{id: id, err: err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelA()
	require.ErrorIs(t, <-errA, context.Canceled)

	close(repo.release)
	got := <-resB
	require.NoError(t, got.err)
	require.Equal(t, "row-p-1", got.id)
}
