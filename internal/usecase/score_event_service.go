package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/scoreevent"
	idgen "github.com/riskibarqy/hockey-league/internal/platform/id"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
)

// ScoreEventInput carries the details of one goal.
type ScoreEventInput struct {
	MatchID     string
	TeamID      string
	ScorerID    *string
	Assist1ID   *string
	Assist2ID   *string
	Period      *scoreevent.Period
	TimeMinutes *int
	TimeSeconds *int
	GoalType    *scoreevent.GoalType
}

// UpdateScoreEventInput replaces the descriptive fields of a stored goal. The
// team must match the stored team.
type UpdateScoreEventInput struct {
	TeamID      string
	ScorerID    *string
	Assist1ID   *string
	Assist2ID   *string
	Period      *scoreevent.Period
	TimeMinutes *int
	TimeSeconds *int
	GoalType    *scoreevent.GoalType
}

// errScoreEventMissing aborts a transaction whose target row does not exist.
var errScoreEventMissing = errors.New("score event missing")

// ScoreEventService keeps each match side's identified and unidentified goals
// consistent: identified + unidentified only changes when a goal is added.
type ScoreEventService struct {
	ledger scoreevent.LedgerRepository
	idGen  idgen.Generator
	logger *logging.Logger
}

func NewScoreEventService(ledger scoreevent.LedgerRepository, idGen idgen.Generator, logger *logging.Logger) *ScoreEventService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ScoreEventService{
		ledger: ledger,
		idGen:  idGen,
		logger: logger,
	}
}

// CreateScoreEvent records a goal. It consumes one unidentified goal of the
// team's side when one is left and otherwise adds a net new goal; it never
// fails because the pool is empty.
func (s *ScoreEventService) CreateScoreEvent(ctx context.Context, input ScoreEventInput) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreEventService.CreateScoreEvent")
	defer span.End()

	event, err := s.newScoreEvent(input)
	if err != nil {
		return "", err
	}

	var (
		eventID  string
		consumed bool
	)
	err = s.ledger.WithinTx(ctx, func(ctx context.Context, tx scoreevent.LedgerTx) error {
		side, txErr := resolveSide(ctx, tx, event.MatchID, event.TeamID)
		if txErr != nil {
			return txErr
		}

		eventID, txErr = tx.InsertScoreEvent(ctx, event)
		if txErr != nil {
			return fmt.Errorf("insert score event: %w", txErr)
		}

		// Zero rows affected means the pool was already empty; the goal is
		// then net new and the counter stays at zero.
		consumed, txErr = tx.AdjustUnidentified(ctx, event.MatchID, side, -1)
		if txErr != nil {
			return fmt.Errorf("consume unidentified goal: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "score event created",
		"match_id", event.MatchID,
		"team_id", event.TeamID,
		"score_event_id", eventID,
		"consumed_unidentified", consumed,
	)

	return eventID, nil
}

// IdentifyGoal turns one of the team's unidentified goals into a detailed
// record. It fails with ErrNoUnidentifiedGoalsAvailable when none is left.
func (s *ScoreEventService) IdentifyGoal(ctx context.Context, input ScoreEventInput) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreEventService.IdentifyGoal")
	defer span.End()

	event, err := s.newScoreEvent(input)
	if err != nil {
		return "", err
	}

	var eventID string
	err = s.ledger.WithinTx(ctx, func(ctx context.Context, tx scoreevent.LedgerTx) error {
		side, txErr := resolveSide(ctx, tx, event.MatchID, event.TeamID)
		if txErr != nil {
			return txErr
		}

		applied, txErr := tx.AdjustUnidentified(ctx, event.MatchID, side, -1)
		if txErr != nil {
			return fmt.Errorf("consume unidentified goal: %w", txErr)
		}
		if !applied {
			return fmt.Errorf("%w: match=%s side=%s", ErrNoUnidentifiedGoalsAvailable, event.MatchID, side)
		}

		eventID, txErr = tx.InsertScoreEvent(ctx, event)
		if txErr != nil {
			return fmt.Errorf("insert score event: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "goal identified",
		"match_id", event.MatchID,
		"team_id", event.TeamID,
		"score_event_id", eventID,
	)

	return eventID, nil
}

// DeleteScoreEvent removes a goal and returns its slot to the side's
// unidentified pool. It reports false when the event does not exist.
func (s *ScoreEventService) DeleteScoreEvent(ctx context.Context, scoreEventID string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreEventService.DeleteScoreEvent")
	defer span.End()

	scoreEventID = strings.TrimSpace(scoreEventID)
	if scoreEventID == "" {
		return false, fmt.Errorf("%w: score event id is required", ErrInvalidInput)
	}

	var deleted scoreevent.Deleted
	err := s.ledger.WithinTx(ctx, func(ctx context.Context, tx scoreevent.LedgerTx) error {
		var (
			exists bool
			err    error
		)
		deleted, exists, err = tx.DeleteScoreEvent(ctx, scoreEventID)
		if err != nil {
			return fmt.Errorf("delete score event: %w", err)
		}
		if !exists {
			return errScoreEventMissing
		}

		side, err := resolveSide(ctx, tx, deleted.MatchID, deleted.TeamID)
		if err != nil {
			return err
		}

		applied, err := tx.AdjustUnidentified(ctx, deleted.MatchID, side, 1)
		if err != nil {
			return fmt.Errorf("restore unidentified goal: %w", err)
		}
		if !applied {
			return fmt.Errorf("%w: match=%s", ErrNotFound, deleted.MatchID)
		}
		return nil
	})
	if errors.Is(err, errScoreEventMissing) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.logger.InfoContext(ctx, "score event deleted",
		"match_id", deleted.MatchID,
		"team_id", deleted.TeamID,
		"score_event_id", scoreEventID,
	)

	return true, nil
}

// UpdateScoreEvent replaces scorer, assists, period, time and goal type.
// Counters are untouched, so moving a goal to the other team is rejected with
// ErrConflict; callers delete and re-create instead.
func (s *ScoreEventService) UpdateScoreEvent(ctx context.Context, scoreEventID string, input UpdateScoreEventInput) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreEventService.UpdateScoreEvent")
	defer span.End()

	scoreEventID = strings.TrimSpace(scoreEventID)
	if scoreEventID == "" {
		return false, fmt.Errorf("%w: score event id is required", ErrInvalidInput)
	}

	err := s.ledger.WithinTx(ctx, func(ctx context.Context, tx scoreevent.LedgerTx) error {
		existing, exists, err := tx.GetScoreEvent(ctx, scoreEventID)
		if err != nil {
			return fmt.Errorf("get score event: %w", err)
		}
		if !exists {
			return errScoreEventMissing
		}

		replacement := scoreevent.ScoreEvent{
			ID:          existing.ID,
			MatchID:     existing.MatchID,
			TeamID:      input.TeamID,
			ScorerID:    input.ScorerID,
			Assist1ID:   input.Assist1ID,
			Assist2ID:   input.Assist2ID,
			Period:      input.Period,
			TimeMinutes: input.TimeMinutes,
			TimeSeconds: input.TimeSeconds,
			GoalType:    input.GoalType,
		}.Normalize()
		if replacement.TeamID == "" {
			replacement.TeamID = existing.TeamID
		}
		if replacement.TeamID != existing.TeamID {
			return fmt.Errorf("%w: score event %s belongs to team %s; delete and re-create it to change teams",
				ErrConflict, scoreEventID, existing.TeamID)
		}
		if err := replacement.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		updated, err := tx.UpdateScoreEvent(ctx, replacement)
		if err != nil {
			return fmt.Errorf("update score event: %w", err)
		}
		if !updated {
			return errScoreEventMissing
		}
		return nil
	})
	if errors.Is(err, errScoreEventMissing) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// RecordUnidentifiedGoal adds one goal to the team's unidentified pool.
func (s *ScoreEventService) RecordUnidentifiedGoal(ctx context.Context, matchID, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreEventService.RecordUnidentifiedGoal")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	teamID = strings.TrimSpace(teamID)
	if matchID == "" || teamID == "" {
		return fmt.Errorf("%w: match id and team id are required", ErrInvalidInput)
	}

	err := s.ledger.WithinTx(ctx, func(ctx context.Context, tx scoreevent.LedgerTx) error {
		side, err := resolveSide(ctx, tx, matchID, teamID)
		if err != nil {
			return err
		}

		applied, err := tx.AdjustUnidentified(ctx, matchID, side, 1)
		if err != nil {
			return fmt.Errorf("add unidentified goal: %w", err)
		}
		if !applied {
			return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "unidentified goal recorded", "match_id", matchID, "team_id", teamID)
	return nil
}

func (s *ScoreEventService) GetMatchScore(ctx context.Context, matchID string) (match.Score, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreEventService.GetMatchScore")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Score{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	score, exists, err := s.ledger.GetMatchScore(ctx, matchID)
	if err != nil {
		return match.Score{}, fmt.Errorf("get match score: %w", err)
	}
	if !exists {
		return match.Score{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return score, nil
}

func (s *ScoreEventService) ListScoreEvents(ctx context.Context, matchID string) ([]scoreevent.ScoreEvent, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreEventService.ListScoreEvents")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	items, err := s.ledger.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list score events: %w", err)
	}

	return items, nil
}

func (s *ScoreEventService) newScoreEvent(input ScoreEventInput) (scoreevent.ScoreEvent, error) {
	event := scoreevent.ScoreEvent{
		MatchID:     input.MatchID,
		TeamID:      input.TeamID,
		ScorerID:    input.ScorerID,
		Assist1ID:   input.Assist1ID,
		Assist2ID:   input.Assist2ID,
		Period:      input.Period,
		TimeMinutes: input.TimeMinutes,
		TimeSeconds: input.TimeSeconds,
		GoalType:    input.GoalType,
	}.Normalize()
	if err := event.Validate(); err != nil {
		return scoreevent.ScoreEvent{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return scoreevent.ScoreEvent{}, fmt.Errorf("generate score event id: %w", err)
	}
	event.ID = id

	return event, nil
}

func resolveSide(ctx context.Context, tx scoreevent.LedgerTx, matchID, teamID string) (match.Side, error) {
	counters, exists, err := tx.GetMatchCounters(ctx, matchID)
	if err != nil {
		return "", fmt.Errorf("get match counters: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	side, ok := counters.SideOf(teamID)
	if !ok {
		return "", fmt.Errorf("%w: team %s does not play in match %s", ErrInvalidInput, teamID, matchID)
	}
	return side, nil
}
