package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrNoUnidentifiedGoalsAvailable is returned by IdentifyGoal when the
	// team's unidentified pool is already empty.
	ErrNoUnidentifiedGoalsAvailable = errors.New("no unidentified goals available")
)
