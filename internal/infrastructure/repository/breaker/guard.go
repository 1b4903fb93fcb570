// Package breaker wraps storage repositories with a circuit breaker so a
// failing database is reported as usecase.ErrDependencyUnavailable instead of
// piling up timed out requests.
package breaker

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
	"github.com/riskibarqy/hockey-league/internal/platform/resilience"
	"github.com/riskibarqy/hockey-league/internal/usecase"
)

type guard struct {
	name    string
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

func (g guard) do(ctx context.Context, op string, fn func() error) error {
	return g.doWith(ctx, op, fn, isStorageFailure)
}

func (g guard) doWith(ctx context.Context, op string, fn func() error, isFailure func(error) bool) error {
	err := g.breaker.Do(fn, isFailure)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		g.logger.WarnContext(ctx, "storage circuit breaker rejected call",
			"repository", g.name,
			"op", op,
			"state", g.breaker.State(),
		)
		return fmt.Errorf("%w: %s.%s: storage is temporarily unavailable", usecase.ErrDependencyUnavailable, g.name, op)
	}
	return err
}

// isStorageFailure ignores cancellations, which are the caller giving up
// rather than the database failing.
func isStorageFailure(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
