package stdio

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository"
	"github.com/rocketscienceinc/tictactoe-bot/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBrokenPipe = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBrokenPipe
}

func newTestServer() (*Server, repository.ResultRepository) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	results := repository.NewMemoryResultRepository()

	return New(logger, usecase.NewSessionFactory(logger, results)), results
}

func TestServer_Serve(t *testing.T) {
	t.Run("Plays a full game", func(t *testing.T) {
		// Given: a game script where X wins on the top row
		server, results := newTestServer()
		in := strings.NewReader("X 0 0\nstart\nX 0 0\r\nO 0 1\n  X 1 0  \nO 1 1\nX 1 1\nX 2 0\n")

		var out strings.Builder

		// When: the script is served
		err := server.Serve(context.Background(), in, &out)

		// Then: every message is written on its own lines
		require.NoError(t, err)

		expected := "Game is not started\n" +
			"...\n...\n...\n" +
			"X..\n...\n...\n" +
			"X..\nO..\n...\n" +
			"XX.\nO..\n...\n" +
			"XX.\nOO.\n...\n" +
			"Invalid turn\n" +
			"XXX\nOO.\n...\n" +
			"Game is finished, X wins\n"
		assert.Equal(t, expected, out.String())

		// And: the result is counted
		tally, err := results.Totals(context.Background())
		require.NoError(t, err)
		assert.Equal(t, entity.Tally{XWins: 1}, tally)
	})

	t.Run("Empty input", func(t *testing.T) {
		server, _ := newTestServer()

		var out strings.Builder
		err := server.Serve(context.Background(), strings.NewReader(""), &out)

		require.NoError(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("Stops on write failure", func(t *testing.T) {
		server, _ := newTestServer()

		err := server.Serve(context.Background(), strings.NewReader("start\nX 0 0\n"), failingWriter{})

		require.ErrorIs(t, err, errBrokenPipe)
	})

	t.Run("Stops when the context is cancelled", func(t *testing.T) {
		server, _ := newTestServer()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var out strings.Builder
		err := server.Serve(ctx, strings.NewReader("start\n"), &out)

		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, out.String())
	})
}
