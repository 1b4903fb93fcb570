package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/hockey-league/internal/usecase"
)

func (h *Handler) GetOrCreatePlayerEventStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOrCreatePlayerEventStats")
	defer span.End()

	var req getOrCreatePlayerEventStatsRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	id, err := h.playerEventStatsService.GetOrCreate(ctx, req.PlayerID, req.EventID)
	if err != nil {
		h.writeFailure(ctx, w, "get or create player event stats failed", err,
			"player_id", req.PlayerID, "event_id", req.EventID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, idDTO{ID: id})
}

func (h *Handler) UpdatePlayerEventStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayerEventStats")
	defer span.End()

	statsID := r.PathValue("statsID")
	var req updatePlayerEventStatsRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerEventStatsService.Update(ctx, statsID, *req.GoalsTotal, *req.AssistsTotal)
	if err != nil {
		h.writeFailure(ctx, w, "update player event stats failed", err, "player_event_stats_id", statsID)
		return
	}
	if !updated {
		writeError(ctx, w, fmt.Errorf("%w: player event stats %s", usecase.ErrNotFound, statsID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mutationResultDTO{ID: statsID, Updated: true})
}

func (h *Handler) DeletePlayerEventStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayerEventStats")
	defer span.End()

	statsID := r.PathValue("statsID")
	deleted, err := h.playerEventStatsService.Delete(ctx, statsID)
	if err != nil {
		h.writeFailure(ctx, w, "delete player event stats failed", err, "player_event_stats_id", statsID)
		return
	}
	if !deleted {
		writeError(ctx, w, fmt.Errorf("%w: player event stats %s", usecase.ErrNotFound, statsID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mutationResultDTO{ID: statsID, Deleted: true})
}

func (h *Handler) EnsureRosterStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EnsureRosterStats")
	defer span.End()

	eventID := r.PathValue("eventID")
	var req ensureRosterStatsRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.playerEventStatsService.EnsureRosterStats(ctx, eventID, req.PlayerIDs)
	if err != nil {
		h.writeFailure(ctx, w, "ensure roster stats failed", err, "event_id", eventID, "players", len(req.PlayerIDs))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ensureRosterStatsDTO{EventID: eventID, Stats: stats})
}

func (h *Handler) GetPlayerEventTotals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerEventTotals")
	defer span.End()

	eventID := r.PathValue("eventID")
	playerID := r.PathValue("playerID")
	totals, err := h.playerEventStatsService.GetPlayerEventTotals(ctx, playerID, eventID)
	if err != nil {
		h.writeFailure(ctx, w, "get player event totals failed", err, "event_id", eventID, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerEventTotalsToDTO(totals))
}
