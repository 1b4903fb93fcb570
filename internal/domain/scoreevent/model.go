package scoreevent

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Period is the game period a goal was scored in.
type Period int

const (
	PeriodFirst    Period = 1
	PeriodSecond   Period = 2
	PeriodThird    Period = 3
	PeriodOvertime Period = 4
	PeriodShootout Period = 5
)

// GoalType classifies the game situation of a goal.
type GoalType string

const (
	GoalTypeEvenStrength GoalType = "even_strength"
	GoalTypePowerPlay    GoalType = "power_play"
	GoalTypeShortHanded  GoalType = "short_handed"
	GoalTypePenaltyShot  GoalType = "penalty_shot"
	GoalTypeEmptyNet     GoalType = "empty_net"
)

const (
	MaxTimeMinutes = 60
	MaxTimeSeconds = 59
)

var (
	ErrMissingMatch     = errors.New("match id is required")
	ErrMissingTeam      = errors.New("team id is required")
	ErrInvalidPeriod    = errors.New("period must be between 1 and 5")
	ErrInvalidTime      = errors.New("time must be within 0:00 and 60:59")
	ErrInvalidGoalType  = errors.New("unknown goal type")
	ErrDuplicatePlayer  = errors.New("scorer and assists must be different players")
	ErrAssistOutOfOrder = errors.New("second assist requires a first assist")
)

// ScoreEvent is one identified goal. Optional fields are nil when unknown.
type ScoreEvent struct {
	ID          string
	MatchID     string
	TeamID      string
	ScorerID    *string
	Assist1ID   *string
	Assist2ID   *string
	Period      *Period
	TimeMinutes *int
	TimeSeconds *int
	GoalType    *GoalType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Deleted describes the event row removed by a delete, enough to locate the
// counter it must be returned to.
type Deleted struct {
	MatchID string
	TeamID  string
}

// Validate checks field ranges and player distinctness. Team membership in the
// match is checked by the ledger against the stored match.
func (e ScoreEvent) Validate() error {
	if strings.TrimSpace(e.MatchID) == "" {
		return ErrMissingMatch
	}
	if strings.TrimSpace(e.TeamID) == "" {
		return ErrMissingTeam
	}
	if e.Period != nil && (*e.Period < PeriodFirst || *e.Period > PeriodShootout) {
		return errors.Wrapf(ErrInvalidPeriod, "period=%d", *e.Period)
	}
	if e.TimeMinutes != nil && (*e.TimeMinutes < 0 || *e.TimeMinutes > MaxTimeMinutes) {
		return errors.Wrapf(ErrInvalidTime, "minutes=%d", *e.TimeMinutes)
	}
	if e.TimeSeconds != nil && (*e.TimeSeconds < 0 || *e.TimeSeconds > MaxTimeSeconds) {
		return errors.Wrapf(ErrInvalidTime, "seconds=%d", *e.TimeSeconds)
	}
	if e.GoalType != nil && !IsValidGoalType(*e.GoalType) {
		return errors.Wrapf(ErrInvalidGoalType, "goal_type=%s", *e.GoalType)
	}
	if e.Assist2ID != nil && e.Assist1ID == nil {
		return ErrAssistOutOfOrder
	}

	seen := make(map[string]struct{}, 3)
	for _, id := range []*string{e.ScorerID, e.Assist1ID, e.Assist2ID} {
		if id == nil {
			continue
		}
		if _, ok := seen[*id]; ok {
			return errors.Wrapf(ErrDuplicatePlayer, "player=%s", *id)
		}
		seen[*id] = struct{}{}
	}

	return nil
}

// Normalize trims ids and drops empty optional references.
func (e ScoreEvent) Normalize() ScoreEvent {
	e.MatchID = strings.TrimSpace(e.MatchID)
	e.TeamID = strings.TrimSpace(e.TeamID)
	e.ScorerID = trimOptional(e.ScorerID)
	e.Assist1ID = trimOptional(e.Assist1ID)
	e.Assist2ID = trimOptional(e.Assist2ID)
	if e.GoalType != nil {
		goalType := GoalType(strings.ToLower(strings.TrimSpace(string(*e.GoalType))))
		if goalType == "" {
			e.GoalType = nil
		} else {
			e.GoalType = &goalType
		}
	}
	return e
}

// Involves reports whether playerID scored or assisted this goal.
func (e ScoreEvent) Involves(playerID string) (goal bool, assist bool) {
	goal = e.ScorerID != nil && *e.ScorerID == playerID
	assist = (e.Assist1ID != nil && *e.Assist1ID == playerID) ||
		(e.Assist2ID != nil && *e.Assist2ID == playerID)
	return goal, assist
}

func IsValidGoalType(goalType GoalType) bool {
	switch goalType {
	case GoalTypeEvenStrength, GoalTypePowerPlay, GoalTypeShortHanded, GoalTypePenaltyShot, GoalTypeEmptyNet:
		return true
	default:
		return false
	}
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
