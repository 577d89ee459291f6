package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

// BoardSize is the number of lines on each axis of the goban.
const BoardSize = 19

var ErrCoordinateOutOfRange = errors.New("coordinate is out of range")

// Coordinate is an intersection of the board. Its fields are unexported so a value
// outside [0, BoardSize) cannot be built from outside the package.
type Coordinate struct {
	x, y uint8
}

func NewCoordinate(x, y int) (Coordinate, error) {
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		return Coordinate{}, fmt.Errorf("%w: (%d,%d)", ErrCoordinateOutOfRange, x, y)
	}

	return Coordinate{x: uint8(x), y: uint8(y)}, nil
}

// MustCoordinate is NewCoordinate for constants and tests. It panics on a bad coordinate.
func MustCoordinate(x, y int) Coordinate {
	c, err := NewCoordinate(x, y)
	if err != nil {
		panic(err)
	}

	return c
}

func (that Coordinate) X() int { return int(that.x) }

func (that Coordinate) Y() int { return int(that.y) }

// Neighbors returns the on-board coordinates one step up, left, down and right.
func (that Coordinate) Neighbors() []Coordinate {
	adj := make([]Coordinate, 0, 4)
	if that.x > 0 {
		adj = append(adj, Coordinate{x: that.x - 1, y: that.y})
	}
	if that.y > 0 {
		adj = append(adj, Coordinate{x: that.x, y: that.y - 1})
	}
	if that.x < BoardSize-1 {
		adj = append(adj, Coordinate{x: that.x + 1, y: that.y})
	}
	if that.y < BoardSize-1 {
		adj = append(adj, Coordinate{x: that.x, y: that.y + 1})
	}

	return adj
}

func (that Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", that.x, that.y)
}

type coordinateJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal(coordinateJSON{X: that.X(), Y: that.Y()})
}

func (that *Coordinate) UnmarshalJSON(data []byte) error {
	var raw coordinateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal coordinate: %w", err)
	}

	c, err := NewCoordinate(raw.X, raw.Y)
	if err != nil {
		return err
	}

	*that = c

	return nil
}
