package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/hockey-league/internal/usecase"
)

func (h *Handler) GetMatchScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchScore")
	defer span.End()

	matchID := r.PathValue("matchID")
	score, err := h.scoreEventService.GetMatchScore(ctx, matchID)
	if err != nil {
		h.writeFailure(ctx, w, "get match score failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchScoreToDTO(score))
}

func (h *Handler) ListScoreEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScoreEvents")
	defer span.End()

	matchID := r.PathValue("matchID")
	events, err := h.scoreEventService.ListScoreEvents(ctx, matchID)
	if err != nil {
		h.writeFailure(ctx, w, "list score events failed", err, "match_id", matchID)
		return
	}

	items := make([]scoreEventDTO, 0, len(events))
	for _, event := range events {
		items = append(items, scoreEventToDTO(event))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateScoreEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateScoreEvent")
	defer span.End()

	matchID := r.PathValue("matchID")
	var req scoreEventRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id, err := h.scoreEventService.CreateScoreEvent(ctx, req.toInput(matchID))
	if err != nil {
		h.writeFailure(ctx, w, "create score event failed", err, "match_id", matchID, "team_id", req.TeamID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, idDTO{ID: id})
}

func (h *Handler) IdentifyGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IdentifyGoal")
	defer span.End()

	matchID := r.PathValue("matchID")
	var req scoreEventRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id, err := h.scoreEventService.IdentifyGoal(ctx, req.toInput(matchID))
	if err != nil {
		h.writeFailure(ctx, w, "identify goal failed", err, "match_id", matchID, "team_id", req.TeamID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, idDTO{ID: id})
}

func (h *Handler) RecordUnidentifiedGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordUnidentifiedGoal")
	defer span.End()

	matchID := r.PathValue("matchID")
	var req unidentifiedGoalRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.scoreEventService.RecordUnidentifiedGoal(ctx, matchID, req.TeamID); err != nil {
		h.writeFailure(ctx, w, "record unidentified goal failed", err, "match_id", matchID, "team_id", req.TeamID)
		return
	}

	score, err := h.scoreEventService.GetMatchScore(ctx, matchID)
	if err != nil {
		h.writeFailure(ctx, w, "get match score failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchScoreToDTO(score))
}

func (h *Handler) UpdateScoreEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateScoreEvent")
	defer span.End()

	scoreEventID := r.PathValue("scoreEventID")
	var req updateScoreEventRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.scoreEventService.UpdateScoreEvent(ctx, scoreEventID, req.toInput())
	if err != nil {
		h.writeFailure(ctx, w, "update score event failed", err, "score_event_id", scoreEventID)
		return
	}
	if !updated {
		writeError(ctx, w, fmt.Errorf("%w: score event %s", usecase.ErrNotFound, scoreEventID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mutationResultDTO{ID: scoreEventID, Updated: true})
}

func (h *Handler) DeleteScoreEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteScoreEvent")
	defer span.End()

	scoreEventID := r.PathValue("scoreEventID")
	deleted, err := h.scoreEventService.DeleteScoreEvent(ctx, scoreEventID)
	if err != nil {
		h.writeFailure(ctx, w, "delete score event failed", err, "score_event_id", scoreEventID)
		return
	}
	if !deleted {
		writeError(ctx, w, fmt.Errorf("%w: score event %s", usecase.ErrNotFound, scoreEventID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mutationResultDTO{ID: scoreEventID, Deleted: true})
}
