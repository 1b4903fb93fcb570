package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo matches into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM matches WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count matches for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	return UpsertMatches(ctx, db, memory.SeedMatches())
}

// UpsertMatches writes match rows in one transaction. Existing rows keep their
// counters.
func UpsertMatches(ctx context.Context, db *sqlx.DB, matches []match.Match) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, m := range matches {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO matches (
    public_id,
    event_public_id,
    home_team_public_id,
    away_team_public_id,
    home_score_unidentified,
    away_score_unidentified,
    status
) VALUES (
    :public_id,
    :event_public_id,
    :home_team_public_id,
    :away_team_public_id,
    :home_score_unidentified,
    :away_score_unidentified,
    :status
)
ON CONFLICT (public_id) DO UPDATE SET
    event_public_id = EXCLUDED.event_public_id,
    home_team_public_id = EXCLUDED.home_team_public_id,
    away_team_public_id = EXCLUDED.away_team_public_id,
    status = EXCLUDED.status,
    deleted_at = NULL`, map[string]any{
			"public_id":               m.ID,
			"event_public_id":         m.EventID,
			"home_team_public_id":     m.HomeTeamID,
			"away_team_public_id":     m.AwayTeamID,
			"home_score_unidentified": m.HomeScoreUnidentified,
			"away_score_unidentified": m.AwayScoreUnidentified,
			"status":                  match.NormalizeStatus(m.Status),
		})
		if err != nil {
			return fmt.Errorf("bind seed match %s query: %w", m.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed match %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
