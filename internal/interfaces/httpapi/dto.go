package httpapi

import (
	"time"

	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/playerstats"
	"github.com/riskibarqy/hockey-league/internal/domain/scoreevent"
	"github.com/riskibarqy/hockey-league/internal/usecase"
)

type scoreEventRequest struct {
	TeamID      string  `json:"team_id" validate:"required"`
	ScorerID    *string `json:"scorer_id"`
	Assist1ID   *string `json:"assist1_id"`
	Assist2ID   *string `json:"assist2_id"`
	Period      *int    `json:"period" validate:"omitempty,min=1,max=5"`
	TimeMinutes *int    `json:"time_minutes" validate:"omitempty,min=0,max=60"`
	TimeSeconds *int    `json:"time_seconds" validate:"omitempty,min=0,max=59"`
	GoalType    *string `json:"goal_type" validate:"omitempty,oneof=even_strength power_play short_handed penalty_shot empty_net"`
}

type updateScoreEventRequest struct {
	TeamID      string  `json:"team_id"`
	ScorerID    *string `json:"scorer_id"`
	Assist1ID   *string `json:"assist1_id"`
	Assist2ID   *string `json:"assist2_id"`
	Period      *int    `json:"period" validate:"omitempty,min=1,max=5"`
	TimeMinutes *int    `json:"time_minutes" validate:"omitempty,min=0,max=60"`
	TimeSeconds *int    `json:"time_seconds" validate:"omitempty,min=0,max=59"`
	GoalType    *string `json:"goal_type" validate:"omitempty,oneof=even_strength power_play short_handed penalty_shot empty_net"`
}

type unidentifiedGoalRequest struct {
	TeamID string `json:"team_id" validate:"required"`
}

type getOrCreatePlayerEventStatsRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	EventID  string `json:"event_id" validate:"required"`
}

type updatePlayerEventStatsRequest struct {
	GoalsTotal   *int `json:"goals_total" validate:"required,min=0"`
	AssistsTotal *int `json:"assists_total" validate:"required,min=0"`
}

type ensureRosterStatsRequest struct {
	PlayerIDs []string `json:"player_ids" validate:"required,min=1,max=200,dive,required"`
}

type idDTO struct {
	ID string `json:"id"`
}

type mutationResultDTO struct {
	ID      string `json:"id"`
	Updated bool   `json:"updated,omitempty"`
	Deleted bool   `json:"deleted,omitempty"`
}

type scoreEventDTO struct {
	ID          string  `json:"id"`
	MatchID     string  `json:"match_id"`
	TeamID      string  `json:"team_id"`
	ScorerID    *string `json:"scorer_id,omitempty"`
	Assist1ID   *string `json:"assist1_id,omitempty"`
	Assist2ID   *string `json:"assist2_id,omitempty"`
	Period      *int    `json:"period,omitempty"`
	TimeMinutes *int    `json:"time_minutes,omitempty"`
	TimeSeconds *int    `json:"time_seconds,omitempty"`
	GoalType    *string `json:"goal_type,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

type sideScoreDTO struct {
	TeamID       string `json:"team_id"`
	Identified   int    `json:"identified"`
	Unidentified int    `json:"unidentified"`
	Total        int    `json:"total"`
}

type matchScoreDTO struct {
	MatchID string       `json:"match_id"`
	Home    sideScoreDTO `json:"home"`
	Away    sideScoreDTO `json:"away"`
}

type countsDTO struct {
	Goals   int `json:"goals"`
	Assists int `json:"assists"`
	Points  int `json:"points"`
}

type playerEventTotalsDTO struct {
	PlayerID string    `json:"player_id"`
	EventID  string    `json:"event_id"`
	StatsID  string    `json:"stats_id,omitempty"`
	Manual   countsDTO `json:"manual"`
	Computed countsDTO `json:"computed"`
	Combined countsDTO `json:"combined"`
}

type ensureRosterStatsDTO struct {
	EventID string            `json:"event_id"`
	Stats   map[string]string `json:"stats"`
}

func (req scoreEventRequest) toInput(matchID string) usecase.ScoreEventInput {
	return usecase.ScoreEventInput{
		MatchID:     matchID,
		TeamID:      req.TeamID,
		ScorerID:    req.ScorerID,
		Assist1ID:   req.Assist1ID,
		Assist2ID:   req.Assist2ID,
		Period:      periodFromRequest(req.Period),
		TimeMinutes: req.TimeMinutes,
		TimeSeconds: req.TimeSeconds,
		GoalType:    goalTypeFromRequest(req.GoalType),
	}
}

func (req updateScoreEventRequest) toInput() usecase.UpdateScoreEventInput {
	return usecase.UpdateScoreEventInput{
		TeamID:      req.TeamID,
		ScorerID:    req.ScorerID,
		Assist1ID:   req.Assist1ID,
		Assist2ID:   req.Assist2ID,
		Period:      periodFromRequest(req.Period),
		TimeMinutes: req.TimeMinutes,
		TimeSeconds: req.TimeSeconds,
		GoalType:    goalTypeFromRequest(req.GoalType),
	}
}

func periodFromRequest(v *int) *scoreevent.Period {
	if v == nil {
		return nil
	}
	p := scoreevent.Period(*v)
	return &p
}

func goalTypeFromRequest(v *string) *scoreevent.GoalType {
	if v == nil {
		return nil
	}
	g := scoreevent.GoalType(*v)
	return &g
}

func scoreEventToDTO(v scoreevent.ScoreEvent) scoreEventDTO {
	out := scoreEventDTO{
		ID:          v.ID,
		MatchID:     v.MatchID,
		TeamID:      v.TeamID,
		ScorerID:    v.ScorerID,
		Assist1ID:   v.Assist1ID,
		Assist2ID:   v.Assist2ID,
		TimeMinutes: v.TimeMinutes,
		TimeSeconds: v.TimeSeconds,
		CreatedAt:   formatTime(v.CreatedAt),
		UpdatedAt:   formatTime(v.UpdatedAt),
	}
	if v.Period != nil {
		p := int(*v.Period)
		out.Period = &p
	}
	if v.GoalType != nil {
		g := string(*v.GoalType)
		out.GoalType = &g
	}
	return out
}

func matchScoreToDTO(v match.Score) matchScoreDTO {
	return matchScoreDTO{
		MatchID: v.MatchID,
		Home:    sideScoreToDTO(v.Home),
		Away:    sideScoreToDTO(v.Away),
	}
}

func sideScoreToDTO(v match.SideScore) sideScoreDTO {
	return sideScoreDTO{
		TeamID:       v.TeamID,
		Identified:   v.Identified,
		Unidentified: v.Unidentified,
		Total:        v.Total(),
	}
}

func countsToDTO(v playerstats.Counts) countsDTO {
	return countsDTO{Goals: v.Goals, Assists: v.Assists, Points: v.Points()}
}

func playerEventTotalsToDTO(v playerstats.Totals) playerEventTotalsDTO {
	return playerEventTotalsDTO{
		PlayerID: v.PlayerID,
		EventID:  v.EventID,
		StatsID:  v.StatsID,
		Manual:   countsToDTO(v.Manual),
		Computed: countsToDTO(v.Computed),
		Combined: countsToDTO(v.Combined()),
	}
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
