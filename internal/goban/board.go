// Package goban holds the board rules: occupancy, move legality, grouping and capture.
package goban

import (
	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

// Board is the sparse occupancy map of a 19x19 goban. A missing key is an empty cell.
type Board struct {
	spaces map[entity.Coordinate]entity.Player
}

func NewBoard() *Board {
	return &Board{spaces: make(map[entity.Coordinate]entity.Player)}
}

// NewBoardFromStones rebuilds a board from a snapshot. A later stone on the same
// coordinate overwrites an earlier one.
func NewBoardFromStones(stones []entity.Move) *Board {
	board := NewBoard()
	for _, stone := range stones {
		board.spaces[stone.At] = stone.Player
	}

	return board
}

// At returns the owner of c, or false when c is empty.
func (that *Board) At(c entity.Coordinate) (entity.Player, bool) {
	player, ok := that.spaces[c]
	return player, ok
}

func (that *Board) IsEmpty(c entity.Coordinate) bool {
	_, ok := that.spaces[c]
	return !ok
}

// Len is the number of stones on the board.
func (that *Board) Len() int {
	return len(that.spaces)
}

// Stones returns a snapshot of the board in row-major order.
func (that *Board) Stones() []entity.Move {
	stones := make([]entity.Move, 0, len(that.spaces))
	forEachCoordinate(func(c entity.Coordinate) {
		if player, ok := that.spaces[c]; ok {
			stones = append(stones, entity.Move{Player: player, At: c})
		}
	})

	return stones
}

func (that *Board) place(move entity.Move) {
	that.spaces[move.At] = move.Player
}

func (that *Board) remove(c entity.Coordinate) (entity.Player, bool) {
	player, ok := that.spaces[c]
	if ok {
		delete(that.spaces, c)
	}

	return player, ok
}

// hasLiberty reports whether any on-board neighbor of c is empty.
func (that *Board) hasLiberty(c entity.Coordinate) bool {
	for _, adj := range c.Neighbors() {
		if that.IsEmpty(adj) {
			return true
		}
	}

	return false
}

// forEachCoordinate visits the board in row-major order: x outer, y inner.
func forEachCoordinate(fn func(c entity.Coordinate)) {
	for x := 0; x < entity.BoardSize; x++ {
		for y := 0; y < entity.BoardSize; y++ {
			fn(entity.MustCoordinate(x, y))
		}
	}
}
