package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell")
	ErrInvalidTurn      = errors.New("invalid turn")
	ErrUnknownPlayer    = errors.New("unknown player")
	ErrMalformedTurn    = errors.New("malformed turn command")
)
