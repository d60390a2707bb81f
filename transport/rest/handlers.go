package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	StatsHandler(w http.ResponseWriter, r *http.Request)
}

type resultRepo interface {
	Totals(ctx context.Context) (entity.Tally, error)
}

type handlers struct {
	logger  *slog.Logger
	results resultRepo
}

func NewHandlers(logger *slog.Logger, results resultRepo) Handlers {
	return &handlers{
		logger:  logger.With("component", "rest"),
		results: results,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

// StatsHandler - returns the number of finished games per outcome.
func (that *handlers) StatsHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "StatsHandler")

	tally, err := that.results.Totals(r.Context())
	if err != nil {
		log.Error("failed to get results", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get results"})
		return
	}

	writeJSON(w, http.StatusOK, tally)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}
