package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-bot/internal/usecase"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Commands are short lines.
	maxMessageSize = 512

	shutdownTimeout = 5 * time.Second
)

type sessionFactory interface {
	NewSession(send usecase.SendFunc, attrs ...any) *usecase.UserHandler
}

type Server struct {
	logger   *slog.Logger
	sessions sessionFactory
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, sessions sessionFactory) *Server {
	return &Server{
		logger:   logger.With("component", "websocket"),
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Handler - routes /ws to the game.
func (that *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/ws", that.serveWS).Methods(http.MethodGet)

	return router
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWS - upgrades the connection and plays one session on it.
func (that *Server) serveWS(writer http.ResponseWriter, req *http.Request) {
	sessionID := uuid.NewString()
	log := that.logger.With("method", "serveWS", "sessionID", sessionID)

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	log.Info("WebSocket connection established")

	send := func(message string) {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			log.Error("failed to set write deadline", "error", err)
			return
		}

		if err := conn.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
			log.Error("failed to send message", "error", err)
		}
	}

	session := that.sessions.NewSession(send, "sessionID", sessionID)

	if err = that.handleMessages(req.Context(), conn, session); err != nil {
		log.Error("error handling messages", "error", err)
		return
	}

	log.Info("WebSocket connection closed")
}

// handleMessages - feeds text frames to the session until the peer goes away.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, session *usecase.UserHandler) error {
	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		if messageType != websocket.TextMessage {
			continue
		}

		session.HandleMessage(ctx, strings.TrimSpace(string(payload)))
	}
}
