package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-bot/internal/config"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-bot/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-bot/transport/rest"
	"github.com/rocketscienceinc/tictactoe-bot/transport/stdio"
	"github.com/rocketscienceinc/tictactoe-bot/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	results, closeResults, err := newResultRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeResults(); err != nil {
			log.Error("could not close result storage", "error", err)
		}
	}()

	sessions := usecase.NewSessionFactory(logger, results)

	switch conf.Transport {
	case config.TransportStdio:
		return runStdio(ctx, logger, sessions)
	case config.TransportWebSocket:
		return runServers(ctx, logger, conf, sessions, results)
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownTransport, conf.Transport)
	}
}

// newResultRepository - Redis when enabled, process memory otherwise.
func newResultRepository(ctx context.Context, conf *config.Config) (repository.ResultRepository, func() error, error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryResultRepository(), func() error { return nil }, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewResultRepository(redisStorage.Connection), redisStorage.Close, nil
}

// runStdio - plays one session on stdin/stdout until input ends.
func runStdio(ctx context.Context, logger *slog.Logger, sessions *usecase.SessionFactory) error {
	log := logger.With("component", "app")

	errCh := make(chan error, 1)
	go func() {
		errCh <- stdio.New(logger, sessions).Serve(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("stdio session error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// runServers - runs the WebSocket game server and the REST status server.
func runServers(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	sessions *usecase.SessionFactory,
	results repository.ResultRepository,
) error {
	log := logger.With("component", "app")

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, results)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, sessions)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err := <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
