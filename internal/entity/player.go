package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

// Player - one of the two marks. The zero value NoPlayer marks an empty cell.
type Player uint8

const (
	NoPlayer Player = iota
	PlayerX
	PlayerO
)

var playersByName = map[string]Player{
	"X": PlayerX,
	"O": PlayerO,
}

// ParsePlayer - looks up a player by its mark name.
func ParsePlayer(name string) (Player, error) {
	player, ok := playersByName[name]
	if !ok {
		return NoPlayer, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, name)
	}

	return player, nil
}

func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "."
	}
}

// Opponent - returns the player who moves after this one.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}
