package httpapi

import (
	"net/http"

	"github.com/riskibarqy/hockey-league/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerScoringRoutes(mux, handler)
	registerPlayerStatsRoutes(mux, handler)

	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux))))
}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerScoringRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches/{matchID}/score", handler.GetMatchScore)
	mux.HandleFunc("GET /v1/matches/{matchID}/score-events", handler.ListScoreEvents)
	mux.HandleFunc("POST /v1/matches/{matchID}/score-events", handler.CreateScoreEvent)
	mux.HandleFunc("POST /v1/matches/{matchID}/score-events/identify", handler.IdentifyGoal)
	mux.HandleFunc("POST /v1/matches/{matchID}/unidentified-goals", handler.RecordUnidentifiedGoal)
	mux.HandleFunc("PUT /v1/score-events/{scoreEventID}", handler.UpdateScoreEvent)
	mux.HandleFunc("DELETE /v1/score-events/{scoreEventID}", handler.DeleteScoreEvent)
}

func registerPlayerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/player-event-stats", handler.GetOrCreatePlayerEventStats)
	mux.HandleFunc("PUT /v1/player-event-stats/{statsID}", handler.UpdatePlayerEventStats)
	mux.HandleFunc("DELETE /v1/player-event-stats/{statsID}", handler.DeletePlayerEventStats)
	mux.HandleFunc("POST /v1/events/{eventID}/player-event-stats", handler.EnsureRosterStats)
	mux.HandleFunc("GET /v1/events/{eventID}/players/{playerID}/totals", handler.GetPlayerEventTotals)
}
