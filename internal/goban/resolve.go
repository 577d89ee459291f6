package goban

import (
	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

// Resolver applies moves to boards under a capture policy.
type Resolver struct {
	policy CapturePolicy
}

type Option func(*Resolver)

// WithCapturePolicy replaces the default ExemptMoveGroup policy.
func WithCapturePolicy(policy CapturePolicy) Option {
	return func(r *Resolver) {
		if policy != nil {
			r.policy = policy
		}
	}
}

func NewResolver(opts ...Option) *Resolver {
	resolver := &Resolver{policy: ExemptMoveGroup}
	for _, opt := range opts {
		opt(resolver)
	}

	return resolver
}

var defaultResolver = NewResolver()

// Resolve applies move to board with the default policy.
func Resolve(board *Board, move entity.Move) []entity.Effect {
	return defaultResolver.Resolve(board, move)
}

// Resolve places move on board and returns what changed: AddPiece, then TogglePlayer,
// then one RemovePiece per captured stone. An occupied target yields no effects and
// leaves the board untouched.
func (that *Resolver) Resolve(board *Board, move entity.Move) []entity.Effect {
	if !IsLegal(board, move) {
		return nil
	}

	board.place(move)

	groups := DetectGroups(board)
	removed := capture(board, groups, that.policy, move)

	return emit(move, removed)
}

func emit(move entity.Move, removed []entity.Move) []entity.Effect {
	effects := make([]entity.Effect, 0, 2+len(removed))
	effects = append(effects, entity.AddPiece(move), entity.TogglePlayer())

	for _, stone := range removed {
		effects = append(effects, entity.RemovePiece(stone))
	}

	return effects
}
