package apperror

import "errors"

var (
	ErrGameNotFound = errors.New("game not found")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrCooldown     = errors.New("move sent before the cooldown elapsed")
)
