package scoreevent

import (
	"context"

	"github.com/riskibarqy/hockey-league/internal/domain/match"
)

// LedgerTx is the set of ledger statements available inside one transaction.
// Every method is a single round-trip to the store.
type LedgerTx interface {
	GetMatchCounters(ctx context.Context, matchID string) (match.Counters, bool, error)
	// AdjustUnidentified applies delta (+1 or -1) to the side's counter. A
	// decrement only applies while the counter is above zero; the returned bool
	// reports whether a row changed.
	AdjustUnidentified(ctx context.Context, matchID string, side match.Side, delta int) (bool, error)
	InsertScoreEvent(ctx context.Context, event ScoreEvent) (string, error)
	GetScoreEvent(ctx context.Context, id string) (ScoreEvent, bool, error)
	UpdateScoreEvent(ctx context.Context, event ScoreEvent) (bool, error)
	DeleteScoreEvent(ctx context.Context, id string) (Deleted, bool, error)
}

// LedgerRepository owns match counters and score event rows.
type LedgerRepository interface {
	// WithinTx runs fn in one transaction. fn returning an error rolls back
	// every statement issued through tx.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
	GetMatchScore(ctx context.Context, matchID string) (match.Score, bool, error)
	ListByMatch(ctx context.Context, matchID string) ([]ScoreEvent, error)
}
