package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

type brokenResults struct{}

func (brokenResults) Totals(context.Context) (entity.Tally, error) {
	return entity.Tally{}, errRedisDown
}

func serve(t *testing.T, results resultRepo, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(logger, results)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, path, nil))

	return recorder
}

func TestPing(t *testing.T) {
	recorder := serve(t, repository.NewMemoryResultRepository(), http.MethodGet, "/ping")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestStats(t *testing.T) {
	t.Run("Returns the tally", func(t *testing.T) {
		// Given: two finished games
		results := repository.NewMemoryResultRepository()
		require.NoError(t, results.Record(context.Background(), entity.StatusOWins))
		require.NoError(t, results.Record(context.Background(), entity.StatusDraw))

		// When: requesting the stats
		recorder := serve(t, results, http.MethodGet, "/stats")

		// Then: the tally is returned as JSON
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"x_wins":0,"o_wins":1,"draws":1}`, recorder.Body.String())
	})

	t.Run("Storage failure", func(t *testing.T) {
		recorder := serve(t, brokenResults{}, http.MethodGet, "/stats")

		require.Equal(t, http.StatusInternalServerError, recorder.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "failed to get results", body["error"])
	})

	t.Run("Only GET is routed", func(t *testing.T) {
		recorder := serve(t, repository.NewMemoryResultRepository(), http.MethodPost, "/stats")

		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	})
}
