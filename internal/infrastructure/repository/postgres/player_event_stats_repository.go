package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hockey-league/internal/domain/playerstats"
	qb "github.com/riskibarqy/hockey-league/internal/platform/querybuilder"
)

type PlayerEventStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerEventStatsRepository(db *sqlx.DB) *PlayerEventStatsRepository {
	return &PlayerEventStatsRepository{db: db}
}

// GetOrCreate inserts a zeroed row unless a live one exists and returns the id
// of whichever row survives. The partial unique index on
// (player_public_id, event_public_id) settles concurrent inserts.
func (r *PlayerEventStatsRepository) GetOrCreate(ctx context.Context, newID, playerID, eventID string) (string, error) {
	insertModel := playerEventStatsInsertModel{
		PublicID: newID,
		PlayerID: playerID,
		EventID:  eventID,
	}
	insertQuery, insertArgs, err := qb.InsertModel("player_event_stats", insertModel,
		"ON CONFLICT (player_public_id, event_public_id) WHERE deleted_at IS NULL DO NOTHING")
	if err != nil {
		return "", fmt.Errorf("build insert player event stats query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return "", fmt.Errorf("insert player event stats: %w", err)
	}

	selectQuery, selectArgs, err := qb.Select("public_id").
		From("player_event_stats").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.Eq("event_public_id", eventID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return "", fmt.Errorf("build select player event stats id query: %w", err)
	}

	var publicID string
	if err := r.db.GetContext(ctx, &publicID, selectQuery, selectArgs...); err != nil {
		return "", fmt.Errorf("select player event stats id: %w", err)
	}

	return publicID, nil
}

func (r *PlayerEventStatsRepository) GetByPlayerAndEvent(ctx context.Context, playerID, eventID string) (playerstats.EventStats, bool, error) {
	query, args, err := qb.Select("*").
		From("player_event_stats").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.Eq("event_public_id", eventID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return playerstats.EventStats{}, false, fmt.Errorf("build get player event stats query: %w", err)
	}

	var row playerEventStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return playerstats.EventStats{}, false, nil
		}
		return playerstats.EventStats{}, false, fmt.Errorf("get player event stats: %w", err)
	}

	return playerEventStatsFromRow(row), true, nil
}

func (r *PlayerEventStatsRepository) Update(ctx context.Context, id string, goalsTotal, assistsTotal int) (bool, error) {
	query, args, err := qb.Update("player_event_stats").
		Set("goals_total", goalsTotal).
		Set("assists_total", assistsTotal).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update player event stats query: %w", err)
	}

	return r.execAffected(ctx, "update player event stats", query, args)
}

func (r *PlayerEventStatsRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.Update("player_event_stats").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player event stats query: %w", err)
	}

	return r.execAffected(ctx, "delete player event stats", query, args)
}

// ComputedCounts counts live score events of the event's matches in which the
// player scored or assisted.
func (r *PlayerEventStatsRepository) ComputedCounts(ctx context.Context, playerID, eventID string) (playerstats.Counts, error) {
	const query = `
SELECT
    COUNT(1) FILTER (WHERE se.scorer_player_public_id = $1) AS goals,
    COUNT(1) FILTER (WHERE se.assist1_player_public_id = $1 OR se.assist2_player_public_id = $1) AS assists
FROM score_events se
JOIN matches m ON m.public_id = se.match_public_id
WHERE m.event_public_id = $2
  AND m.deleted_at IS NULL
  AND se.deleted_at IS NULL`

	var row computedCountsRow
	if err := r.db.GetContext(ctx, &row, query, playerID, eventID); err != nil {
		return playerstats.Counts{}, fmt.Errorf("compute player event counts: %w", err)
	}

	return playerstats.Counts{Goals: row.Goals, Assists: row.Assists}, nil
}

func (r *PlayerEventStatsRepository) execAffected(ctx context.Context, op, query string, args []any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s rows affected: %w", op, err)
	}
	return affected > 0, nil
}

func playerEventStatsFromRow(row playerEventStatsTableModel) playerstats.EventStats {
	return playerstats.EventStats{
		ID:           row.PublicID,
		PlayerID:     row.PlayerID,
		EventID:      row.EventID,
		GoalsTotal:   row.GoalsTotal,
		AssistsTotal: row.AssistsTotal,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
