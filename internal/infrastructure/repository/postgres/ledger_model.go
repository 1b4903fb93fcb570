package postgres

import (
	"database/sql"
	"time"
)

type matchCountersRow struct {
	PublicID         string `db:"public_id"`
	EventID          string `db:"event_public_id"`
	HomeTeamID       string `db:"home_team_public_id"`
	AwayTeamID       string `db:"away_team_public_id"`
	HomeUnidentified int    `db:"home_score_unidentified"`
	AwayUnidentified int    `db:"away_score_unidentified"`
}

type matchScoreRow struct {
	PublicID         string `db:"public_id"`
	HomeTeamID       string `db:"home_team_public_id"`
	AwayTeamID       string `db:"away_team_public_id"`
	HomeUnidentified int    `db:"home_score_unidentified"`
	AwayUnidentified int    `db:"away_score_unidentified"`
	HomeIdentified   int    `db:"home_identified"`
	AwayIdentified   int    `db:"away_identified"`
}

type scoreEventTableModel struct {
	ID          int64          `db:"id"`
	PublicID    string         `db:"public_id"`
	MatchID     string         `db:"match_public_id"`
	TeamID      string         `db:"team_public_id"`
	ScorerID    sql.NullString `db:"scorer_player_public_id"`
	Assist1ID   sql.NullString `db:"assist1_player_public_id"`
	Assist2ID   sql.NullString `db:"assist2_player_public_id"`
	Period      sql.NullInt32  `db:"period"`
	TimeMinutes sql.NullInt32  `db:"time_minutes"`
	TimeSeconds sql.NullInt32  `db:"time_seconds"`
	GoalType    sql.NullString `db:"goal_type"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	DeletedAt   *time.Time     `db:"deleted_at"`
}

type scoreEventInsertModel struct {
	PublicID    string         `db:"public_id"`
	MatchID     string         `db:"match_public_id"`
	TeamID      string         `db:"team_public_id"`
	ScorerID    sql.NullString `db:"scorer_player_public_id"`
	Assist1ID   sql.NullString `db:"assist1_player_public_id"`
	Assist2ID   sql.NullString `db:"assist2_player_public_id"`
	Period      sql.NullInt32  `db:"period"`
	TimeMinutes sql.NullInt32  `db:"time_minutes"`
	TimeSeconds sql.NullInt32  `db:"time_seconds"`
	GoalType    sql.NullString `db:"goal_type"`
}

type playerEventStatsTableModel struct {
	ID           int64      `db:"id"`
	PublicID     string     `db:"public_id"`
	PlayerID     string     `db:"player_public_id"`
	EventID      string     `db:"event_public_id"`
	GoalsTotal   int        `db:"goals_total"`
	AssistsTotal int        `db:"assists_total"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type playerEventStatsInsertModel struct {
	PublicID string `db:"public_id"`
	PlayerID string `db:"player_public_id"`
	EventID  string `db:"event_public_id"`
}

type computedCountsRow struct {
	Goals   int `db:"goals"`
	Assists int `db:"assists"`
}
