package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Player owns stones. The first player places the dark stones and moves first.
type Player int

const (
	FirstPlayer  Player = 0
	SecondPlayer Player = 1
)

var ErrUnknownPlayer = errors.New("unknown player")

func NewPlayer(value int) (Player, error) {
	switch Player(value) {
	case FirstPlayer, SecondPlayer:
		return Player(value), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownPlayer, value)
	}
}

// UnmarshalJSON accepts only the two known players.
func (that *Player) UnmarshalJSON(data []byte) error {
	var value int
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("failed to unmarshal player: %w", err)
	}

	player, err := NewPlayer(value)
	if err != nil {
		return err
	}

	*that = player

	return nil
}

// Next returns the player whose turn follows this one.
func (that Player) Next() Player {
	if that == FirstPlayer {
		return SecondPlayer
	}
	return FirstPlayer
}

func (that Player) String() string {
	switch that {
	case FirstPlayer:
		return "black"
	case SecondPlayer:
		return "white"
	default:
		return fmt.Sprintf("player(%d)", int(that))
	}
}

// Move is a request to put a stone of Player on At.
type Move struct {
	Player Player     `json:"player"`
	At     Coordinate `json:"at"`
}
