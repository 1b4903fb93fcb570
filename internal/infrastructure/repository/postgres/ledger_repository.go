package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/scoreevent"
	qb "github.com/riskibarqy/hockey-league/internal/platform/querybuilder"
)

const scoreEventColumns = `id, public_id, match_public_id, team_public_id,
    scorer_player_public_id, assist1_player_public_id, assist2_player_public_id,
    period, time_minutes, time_seconds, goal_type, created_at, updated_at, deleted_at`

type LedgerRepository struct {
	db *sqlx.DB
}

func NewLedgerRepository(db *sqlx.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// WithinTx commits when fn returns nil and rolls back otherwise.
func (r *LedgerRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx scoreevent.LedgerTx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ledger tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, &ledgerTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ledger tx: %w", err)
	}

	return nil
}

// GetMatchScore reads counters and identified counts in one statement so both
// come from the same snapshot.
func (r *LedgerRepository) GetMatchScore(ctx context.Context, matchID string) (match.Score, bool, error) {
	const query = `
SELECT
    m.public_id,
    m.home_team_public_id,
    m.away_team_public_id,
    m.home_score_unidentified,
    m.away_score_unidentified,
    (SELECT COUNT(1) FROM score_events se
      WHERE se.match_public_id = m.public_id
        AND se.team_public_id = m.home_team_public_id
        AND se.deleted_at IS NULL) AS home_identified,
    (SELECT COUNT(1) FROM score_events se
      WHERE se.match_public_id = m.public_id
        AND se.team_public_id = m.away_team_public_id
        AND se.deleted_at IS NULL) AS away_identified
FROM matches m
WHERE m.public_id = $1
  AND m.deleted_at IS NULL`

	var row matchScoreRow
	if err := r.db.GetContext(ctx, &row, query, matchID); err != nil {
		if isNotFound(err) {
			return match.Score{}, false, nil
		}
		return match.Score{}, false, fmt.Errorf("get match score: %w", err)
	}

	return match.Score{
		MatchID: row.PublicID,
		Home: match.SideScore{
			TeamID:       row.HomeTeamID,
			Identified:   row.HomeIdentified,
			Unidentified: row.HomeUnidentified,
		},
		Away: match.SideScore{
			TeamID:       row.AwayTeamID,
			Identified:   row.AwayIdentified,
			Unidentified: row.AwayUnidentified,
		},
	}, true, nil
}

func (r *LedgerRepository) ListByMatch(ctx context.Context, matchID string) ([]scoreevent.ScoreEvent, error) {
	query, args, err := qb.Select(scoreEventColumns).
		From("score_events").
		Where(
			qb.Eq("match_public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("period", "time_minutes", "time_seconds", "created_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list score events query: %w", err)
	}

	var rows []scoreEventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list score events by match: %w", err)
	}

	out := make([]scoreevent.ScoreEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoreEventFromRow(row))
	}

	return out, nil
}

type ledgerTx struct {
	tx *sqlx.Tx
}

func (t *ledgerTx) GetMatchCounters(ctx context.Context, matchID string) (match.Counters, bool, error) {
	query, args, err := qb.Select(
		"public_id",
		"event_public_id",
		"home_team_public_id",
		"away_team_public_id",
		"home_score_unidentified",
		"away_score_unidentified",
	).
		From("matches").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return match.Counters{}, false, fmt.Errorf("build get match counters query: %w", err)
	}

	var row matchCountersRow
	if err := t.tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Counters{}, false, nil
		}
		return match.Counters{}, false, fmt.Errorf("get match counters: %w", err)
	}

	return match.Counters{
		MatchID:          row.PublicID,
		EventID:          row.EventID,
		HomeTeamID:       row.HomeTeamID,
		AwayTeamID:       row.AwayTeamID,
		HomeUnidentified: row.HomeUnidentified,
		AwayUnidentified: row.AwayUnidentified,
	}, true, nil
}

// AdjustUnidentified adds delta to one side's counter. A decrement that would
// go below zero matches no row and reports false; the check and the write are
// one statement, so concurrent decrements cannot overdraw the counter.
func (t *ledgerTx) AdjustUnidentified(ctx context.Context, matchID string, side match.Side, delta int) (bool, error) {
	column, err := unidentifiedColumn(side)
	if err != nil {
		return false, err
	}

	conditions := []qb.Condition{
		qb.Eq("public_id", matchID),
		qb.IsNull("deleted_at"),
	}
	if delta < 0 {
		// column + delta >= 0
		conditions = append(conditions, qb.Gt(column, -delta-1))
	}

	query, args, err := qb.Update("matches").
		SetExpr(column, column+" + ?", delta).
		SetExpr("updated_at", "NOW()").
		Where(conditions...).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build adjust unidentified query: %w", err)
	}

	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("adjust %s for match=%s: %w", column, matchID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read adjusted rows: %w", err)
	}

	return affected > 0, nil
}

func (t *ledgerTx) InsertScoreEvent(ctx context.Context, event scoreevent.ScoreEvent) (string, error) {
	insertModel := scoreEventInsertModel{
		PublicID:    event.ID,
		MatchID:     event.MatchID,
		TeamID:      event.TeamID,
		ScorerID:    nullableString(event.ScorerID),
		Assist1ID:   nullableString(event.Assist1ID),
		Assist2ID:   nullableString(event.Assist2ID),
		Period:      nullablePeriod(event.Period),
		TimeMinutes: nullableInt(event.TimeMinutes),
		TimeSeconds: nullableInt(event.TimeSeconds),
		GoalType:    nullableGoalType(event.GoalType),
	}

	query, args, err := qb.InsertModel("score_events", insertModel, "RETURNING public_id")
	if err != nil {
		return "", fmt.Errorf("build insert score event query: %w", err)
	}

	var publicID string
	if err := t.tx.GetContext(ctx, &publicID, query, args...); err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("score event %s already exists: %w", event.ID, err)
		}
		return "", fmt.Errorf("insert score event: %w", err)
	}

	return publicID, nil
}

func (t *ledgerTx) GetScoreEvent(ctx context.Context, id string) (scoreevent.ScoreEvent, bool, error) {
	query, args, err := qb.Select(scoreEventColumns).
		From("score_events").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		Suffix("FOR UPDATE").
		ToSQL()
	if err != nil {
		return scoreevent.ScoreEvent{}, false, fmt.Errorf("build get score event query: %w", err)
	}

	var row scoreEventTableModel
	if err := t.tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scoreevent.ScoreEvent{}, false, nil
		}
		return scoreevent.ScoreEvent{}, false, fmt.Errorf("get score event: %w", err)
	}

	return scoreEventFromRow(row), true, nil
}

// UpdateScoreEvent replaces the descriptive columns. Match and team are never
// written here.
func (t *ledgerTx) UpdateScoreEvent(ctx context.Context, event scoreevent.ScoreEvent) (bool, error) {
	query, args, err := qb.Update("score_events").
		Set("scorer_player_public_id", nullableString(event.ScorerID)).
		Set("assist1_player_public_id", nullableString(event.Assist1ID)).
		Set("assist2_player_public_id", nullableString(event.Assist2ID)).
		Set("period", nullablePeriod(event.Period)).
		Set("time_minutes", nullableInt(event.TimeMinutes)).
		Set("time_seconds", nullableInt(event.TimeSeconds)).
		Set("goal_type", nullableGoalType(event.GoalType)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", event.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update score event query: %w", err)
	}

	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update score event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read updated rows: %w", err)
	}

	return affected > 0, nil
}

func (t *ledgerTx) DeleteScoreEvent(ctx context.Context, id string) (scoreevent.Deleted, bool, error) {
	query, args, err := qb.Update("score_events").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		Returning("match_public_id", "team_public_id").
		ToSQL()
	if err != nil {
		return scoreevent.Deleted{}, false, fmt.Errorf("build delete score event query: %w", err)
	}

	var row struct {
		MatchID string `db:"match_public_id"`
		TeamID  string `db:"team_public_id"`
	}
	if err := t.tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scoreevent.Deleted{}, false, nil
		}
		return scoreevent.Deleted{}, false, fmt.Errorf("delete score event: %w", err)
	}

	return scoreevent.Deleted{MatchID: row.MatchID, TeamID: row.TeamID}, true, nil
}

func unidentifiedColumn(side match.Side) (string, error) {
	switch side {
	case match.SideHome:
		return "home_score_unidentified", nil
	case match.SideAway:
		return "away_score_unidentified", nil
	default:
		return "", fmt.Errorf("unknown match side %q", side)
	}
}

func scoreEventFromRow(row scoreEventTableModel) scoreevent.ScoreEvent {
	event := scoreevent.ScoreEvent{
		ID:          row.PublicID,
		MatchID:     row.MatchID,
		TeamID:      row.TeamID,
		ScorerID:    stringPtr(row.ScorerID),
		Assist1ID:   stringPtr(row.Assist1ID),
		Assist2ID:   stringPtr(row.Assist2ID),
		TimeMinutes: intPtr(row.TimeMinutes),
		TimeSeconds: intPtr(row.TimeSeconds),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.Period.Valid {
		period := scoreevent.Period(row.Period.Int32)
		event.Period = &period
	}
	if row.GoalType.Valid {
		goalType := scoreevent.GoalType(row.GoalType.String)
		event.GoalType = &goalType
	}
	return event
}

func nullablePeriod(value *scoreevent.Period) sql.NullInt32 {
	if value == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*value), Valid: true}
}

func nullableGoalType(value *scoreevent.GoalType) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*value), Valid: true}
}
