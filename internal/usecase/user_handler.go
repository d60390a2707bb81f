package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

// SendFunc - delivers one outbound message to the user.
type SendFunc func(message string)

type resultRepo interface {
	Record(ctx context.Context, status entity.Status) error
}

// sessionState - either noGame or inProgress.
type sessionState interface {
	sessionState()
}

type noGame struct{}

type inProgress struct {
	game *entity.Game
}

func (noGame) sessionState()     {}
func (inProgress) sessionState() {}

// UserHandler - plays tic-tac-toe with one user over text messages.
// It is not safe for concurrent use; feed it one message at a time.
type UserHandler struct {
	logger  *slog.Logger
	send    SendFunc
	results resultRepo

	state sessionState
}

func NewUserHandler(logger *slog.Logger, send SendFunc, results resultRepo) *UserHandler {
	return &UserHandler{
		logger:  logger,
		send:    send,
		results: results,
		state:   noGame{},
	}
}

// HandleMessage - processes one line from the user.
func (that *UserHandler) HandleMessage(ctx context.Context, message string) {
	log := that.logger.With("method", "HandleMessage")

	if message == tictactoe.StartCommand {
		that.StartGame()
		return
	}

	switch state := that.state.(type) {
	case noGame:
		log.Debug("message without game", "message", message, "error", apperror.ErrGameIsNotStarted)
		that.send(tictactoe.MsgGameNotStarted)
	case inProgress:
		that.handleTurn(ctx, state.game, message)
	default:
		panic(fmt.Sprintf("unknown session state %T", state))
	}
}

// StartGame - starts a new game and shows the empty field. A running game is dropped.
func (that *UserHandler) StartGame() {
	if _, ok := that.state.(inProgress); ok {
		that.logger.Info("game restarted")
	} else {
		that.logger.Info("game started")
	}

	that.state = inProgress{game: entity.NewGame()}
	that.sendField()
}

func (that *UserHandler) handleTurn(ctx context.Context, game *entity.Game, message string) {
	log := that.logger.With("method", "handleTurn")

	turn, err := tictactoe.ParseTurn(message)
	if err != nil {
		log.Debug("malformed turn", "message", message, "error", err)
		that.send(tictactoe.MsgInvalidTurn)
		return
	}

	if !game.CanMakeTurn(turn.Player, turn.Row, turn.Col) {
		log.Debug("invalid turn", "player", turn.Player.String(), "row", turn.Row, "col", turn.Col)
		that.send(tictactoe.MsgInvalidTurn)
		return
	}

	if err = game.MakeTurn(turn.Player, turn.Row, turn.Col); err != nil {
		panic(fmt.Sprintf("checked turn rejected: %v", err))
	}

	that.sendField()

	if game.IsFinished() {
		that.finishGame(ctx)
	}
}

// finishGame - announces the result of the finished game and drops it.
func (that *UserHandler) finishGame(ctx context.Context) {
	game := that.mustGame()
	if !game.IsFinished() {
		panic("finishGame called on a game in progress")
	}

	that.send(tictactoe.ResultMessage(game))
	that.state = noGame{}

	log := that.logger.With("method", "finishGame", "status", game.Status().String())
	log.Info("game finished")

	if err := that.results.Record(ctx, game.Status()); err != nil {
		log.Error("failed to record result", "error", err)
	}
}

// sendField - sends the current field to the user.
func (that *UserHandler) sendField() {
	that.send(tictactoe.RenderField(that.mustGame().Board()))
}

func (that *UserHandler) mustGame() *entity.Game {
	state, ok := that.state.(inProgress)
	if !ok {
		panic("session has no game")
	}

	return state.game
}
