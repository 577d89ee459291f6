package goban

import (
	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

// IsLegal reports whether move may be placed: its coordinate must be empty.
func IsLegal(board *Board, move entity.Move) bool {
	return board.IsEmpty(move.At)
}
