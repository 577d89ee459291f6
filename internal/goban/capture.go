package goban

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

// CapturePolicy decides whether a detected group is taken off the board after move.
// exempt is the group holding the stone move just placed.
type CapturePolicy interface {
	Captures(group Group, move entity.Move, exempt GroupID) bool
}

// CapturePolicyFunc adapts a plain function to CapturePolicy.
type CapturePolicyFunc func(group Group, move entity.Move, exempt GroupID) bool

func (that CapturePolicyFunc) Captures(group Group, move entity.Move, exempt GroupID) bool {
	return that(group, move, exempt)
}

// ExemptMoveGroup captures every group without a liberty except the one the move just
// formed. The mover's other groups are captured too. A move that leaves its own group
// without liberties is kept: self-capture is not resolved.
var ExemptMoveGroup CapturePolicy = CapturePolicyFunc(func(group Group, _ entity.Move, exempt GroupID) bool {
	return !group.HasLiberty && group.ID != exempt
})

// OpponentGroupsOnly captures only the opponent's groups without a liberty.
var OpponentGroupsOnly CapturePolicy = CapturePolicyFunc(func(group Group, move entity.Move, exempt GroupID) bool {
	return !group.HasLiberty && group.ID != exempt && group.Owner != move.Player
})

const (
	PolicyExemptMove   = "exempt-move"
	PolicyOpponentOnly = "opponent-only"
)

var ErrUnknownCapturePolicy = errors.New("unknown capture policy")

// PolicyByName maps a configuration value to a policy.
func PolicyByName(name string) (CapturePolicy, error) {
	switch name {
	case "", PolicyExemptMove:
		return ExemptMoveGroup, nil
	case PolicyOpponentOnly:
		return OpponentGroupsOnly, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCapturePolicy, name)
	}
}

// capture removes every stone of the groups the policy selects and returns them in
// group order, stones in row-major order.
func capture(board *Board, groups *Groups, policy CapturePolicy, move entity.Move) []entity.Move {
	exempt := groups.IDOf(move.At)

	var removed []entity.Move
	for _, group := range groups.All() {
		if !policy.Captures(group, move, exempt) {
			continue
		}

		for _, c := range group.Stones {
			if player, ok := board.remove(c); ok {
				removed = append(removed, entity.Move{Player: player, At: c})
			}
		}
	}

	return removed
}
