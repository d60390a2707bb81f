package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

const BoardSize = 3

// Board - row-major grid, board[row][col].
type Board [BoardSize][BoardSize]Player

// Status - exactly one holds for a game at any time.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusXWins
	StatusOWins
	StatusDraw
)

// WinCombos - the 8 lines as row-major cell indexes.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Status) String() string {
	switch that {
	case StatusInProgress:
		return "in_progress"
	case StatusXWins:
		return "x_wins"
	case StatusOWins:
		return "o_wins"
	case StatusDraw:
		return "draw"
	default:
		return fmt.Sprintf("status(%d)", uint8(that))
	}
}

// IsFinished - reports whether the status is terminal.
func (that Status) IsFinished() bool {
	return that == StatusXWins || that == StatusOWins || that == StatusDraw
}

// Game - a single game of tic-tac-toe. X always moves first.
type Game struct {
	board  Board
	turn   Player
	status Status
}

func NewGame() *Game {
	return &Game{
		turn:   PlayerX,
		status: StatusInProgress,
	}
}

// CanMakeTurn - checks the move without changing the game.
func (that *Game) CanMakeTurn(player Player, row, col int) bool {
	return that.validateMove(player, row, col) == nil
}

// MakeTurn - places the mark, passes the turn and recomputes the status.
// An illegal move leaves the game untouched.
func (that *Game) MakeTurn(player Player, row, col int) error {
	if err := that.validateMove(player, row, col); err != nil {
		return fmt.Errorf("%w: %s to row %d col %d: %w", apperror.ErrInvalidTurn, player, row, col, err)
	}

	that.board[row][col] = player
	that.turn = player.Opponent()
	that.status = that.board.determineStatus()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.status.IsFinished()
}

// Winner - returns the winning player; false for a draw or an unfinished game.
func (that *Game) Winner() (Player, bool) {
	switch that.status {
	case StatusXWins:
		return PlayerX, true
	case StatusOWins:
		return PlayerO, true
	default:
		return NoPlayer, false
	}
}

func (that *Game) Board() Board {
	return that.board
}

func (that *Game) Turn() Player {
	return that.turn
}

func (that *Game) Status() Status {
	return that.status
}

func (that *Game) validateMove(player Player, row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if player != that.turn {
		return apperror.ErrNotYourTurn
	}

	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return apperror.ErrInvalidCell
	}

	if that.board[row][col] != NoPlayer {
		return apperror.ErrCellOccupied
	}

	return nil
}

func (that *Board) cell(index int) Player {
	return that[index/BoardSize][index%BoardSize]
}

func (that *Board) determineStatus() Status {
	for _, combo := range WinCombos {
		a, b, c := that.cell(combo[0]), that.cell(combo[1]), that.cell(combo[2])
		if a != NoPlayer && a == b && b == c {
			if a == PlayerX {
				return StatusXWins
			}
			return StatusOWins
		}
	}

	// the game will continue until all the squares are full
	for _, row := range that {
		for _, cell := range row {
			if cell == NoPlayer {
				return StatusInProgress
			}
		}
	}

	return StatusDraw
}
