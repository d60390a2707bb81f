package tictactoe

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	MsgGameNotStarted = "Game is not started"
	MsgInvalidTurn    = "Invalid turn"
	MsgDraw           = "Game is finished, draw"
	MsgXWins          = "Game is finished, X wins"
	MsgOWins          = "Game is finished, O wins"
)

const emptyCellMark = '.'

// RenderField - one line per row, one character per cell.
func RenderField(board entity.Board) string {
	rows := make([]string, 0, len(board))

	for _, row := range board {
		var line strings.Builder
		for _, cell := range row {
			if cell == entity.NoPlayer {
				line.WriteByte(emptyCellMark)
				continue
			}
			line.WriteString(cell.String())
		}
		rows = append(rows, line.String())
	}

	return strings.Join(rows, "\n")
}

// ResultMessage - the message announcing how a finished game ended.
func ResultMessage(game *entity.Game) string {
	winner, ok := game.Winner()
	switch {
	case !ok:
		return MsgDraw
	case winner == entity.PlayerX:
		return MsgXWins
	default:
		return MsgOWins
	}
}
