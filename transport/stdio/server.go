package stdio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-bot/internal/usecase"
)

type sessionFactory interface {
	NewSession(send usecase.SendFunc, attrs ...any) *usecase.UserHandler
}

// Server - plays one session over a line-based stream, one command per line.
type Server struct {
	logger   *slog.Logger
	sessions sessionFactory
}

func New(logger *slog.Logger, sessions sessionFactory) *Server {
	return &Server{
		logger:   logger.With("component", "stdio"),
		sessions: sessions,
	}
}

// Serve - feeds every line of in to a new session and writes its messages to out.
// It returns nil at the end of input.
func (that *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Serve")

	writer := bufio.NewWriter(out)

	var writeErr error
	send := func(message string) {
		if writeErr != nil {
			return
		}

		if _, err := fmt.Fprintln(writer, message); err != nil {
			writeErr = err
			return
		}

		writeErr = writer.Flush()
	}

	session := that.sessions.NewSession(send)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("stdio session interrupted: %w", err)
		}

		session.HandleMessage(ctx, strings.TrimSpace(scanner.Text()))

		if writeErr != nil {
			return fmt.Errorf("failed to write message: %w", writeErr)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	log.Info("input closed")

	return nil
}
