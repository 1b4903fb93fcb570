package breaker

import (
	"context"

	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/scoreevent"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
	"github.com/riskibarqy/hockey-league/internal/platform/resilience"
)

type LedgerRepository struct {
	next  scoreevent.LedgerRepository
	guard guard
}

func NewLedgerRepository(next scoreevent.LedgerRepository, breaker *resilience.CircuitBreaker, logger *logging.Logger) *LedgerRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &LedgerRepository{
		next:  next,
		guard: guard{name: "ledger", breaker: breaker, logger: logger.Named("breaker")},
	}
}

// WithinTx only counts storage errors against the breaker. Errors returned by
// fn itself, such as an empty unidentified pool, mean the database answered.
func (r *LedgerRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx scoreevent.LedgerTx) error) error {
	var (
		fnErr      error
		storageErr error
	)
	return r.guard.doWith(ctx, "WithinTx", func() error {
		return r.next.WithinTx(ctx, func(ctx context.Context, tx scoreevent.LedgerTx) error {
			fnErr = fn(ctx, &ledgerTx{next: tx, storageErr: &storageErr})
			return fnErr
		})
	}, func(err error) bool {
		if fnErr != nil && storageErr == nil {
			return false
		}
		return isStorageFailure(err)
	})
}

func (r *LedgerRepository) GetMatchScore(ctx context.Context, matchID string) (match.Score, bool, error) {
	var (
		score  match.Score
		exists bool
	)
	err := r.guard.do(ctx, "GetMatchScore", func() error {
		var err error
		score, exists, err = r.next.GetMatchScore(ctx, matchID)
		return err
	})
	return score, exists, err
}

func (r *LedgerRepository) ListByMatch(ctx context.Context, matchID string) ([]scoreevent.ScoreEvent, error) {
	var items []scoreevent.ScoreEvent
	err := r.guard.do(ctx, "ListByMatch", func() error {
		var err error
		items, err = r.next.ListByMatch(ctx, matchID)
		return err
	})
	return items, err
}

// ledgerTx remembers the first statement error so WithinTx can tell storage
// failures apart from errors produced by the transaction body.
type ledgerTx struct {
	next       scoreevent.LedgerTx
	storageErr *error
}

func (t *ledgerTx) record(err error) error {
	if err != nil && *t.storageErr == nil {
		*t.storageErr = err
	}
	return err
}

func (t *ledgerTx) GetMatchCounters(ctx context.Context, matchID string) (match.Counters, bool, error) {
	counters, exists, err := t.next.GetMatchCounters(ctx, matchID)
	return counters, exists, t.record(err)
}

func (t *ledgerTx) AdjustUnidentified(ctx context.Context, matchID string, side match.Side, delta int) (bool, error) {
	applied, err := t.next.AdjustUnidentified(ctx, matchID, side, delta)
	return applied, t.record(err)
}

func (t *ledgerTx) InsertScoreEvent(ctx context.Context, event scoreevent.ScoreEvent) (string, error) {
	id, err := t.next.InsertScoreEvent(ctx, event)
	return id, t.record(err)
}

func (t *ledgerTx) GetScoreEvent(ctx context.Context, id string) (scoreevent.ScoreEvent, bool, error) {
	event, exists, err := t.next.GetScoreEvent(ctx, id)
	return event, exists, t.record(err)
}

func (t *ledgerTx) UpdateScoreEvent(ctx context.Context, event scoreevent.ScoreEvent) (bool, error) {
	updated, err := t.next.UpdateScoreEvent(ctx, event)
	return updated, t.record(err)
}

func (t *ledgerTx) DeleteScoreEvent(ctx context.Context, id string) (scoreevent.Deleted, bool, error) {
	deleted, exists, err := t.next.DeleteScoreEvent(ctx, id)
	return deleted, exists, t.record(err)
}
