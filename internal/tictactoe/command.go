package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

// StartCommand - starts a new game, dropping the current one.
const StartCommand = "start"

const turnTokens = 3

// Turn - a parsed "<player> <col> <row>" command.
type Turn struct {
	Player entity.Player
	Col    int
	Row    int
}

// ParseTurn - parses a turn command. Any failure wraps apperror.ErrMalformedTurn.
func ParseTurn(message string) (Turn, error) {
	tokens := strings.Fields(message)
	if len(tokens) != turnTokens {
		return Turn{}, fmt.Errorf("%w: want %d tokens, got %d", apperror.ErrMalformedTurn, turnTokens, len(tokens))
	}

	player, err := entity.ParsePlayer(tokens[0])
	if err != nil {
		return Turn{}, fmt.Errorf("%w: %w", apperror.ErrMalformedTurn, err)
	}

	col, err := strconv.Atoi(tokens[1])
	if err != nil {
		return Turn{}, fmt.Errorf("%w: column: %w", apperror.ErrMalformedTurn, err)
	}

	row, err := strconv.Atoi(tokens[2])
	if err != nil {
		return Turn{}, fmt.Errorf("%w: row: %w", apperror.ErrMalformedTurn, err)
	}

	return Turn{Player: player, Col: col, Row: row}, nil
}
