package entity

import (
	"time"
)

// Game is a live goban session. Stones is the board snapshot in row-major order.
type Game struct {
	ID        string    `json:"id"`
	Turn      Player    `json:"turn"`
	MoveCount int       `json:"move_count"`
	Stones    []Move    `json:"stones"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ReadyAt   time.Time `json:"ready_at"`
}

func NewGame(id string, now time.Time) *Game {
	return &Game{
		ID:        id,
		Turn:      FirstPlayer,
		Stones:    []Move{},
		CreatedAt: now,
		UpdatedAt: now,
		ReadyAt:   now,
	}
}

// Reset empties the board and hands the turn back to the first player.
func (that *Game) Reset(now time.Time) {
	that.Turn = FirstPlayer
	that.MoveCount = 0
	that.Stones = []Move{}
	that.UpdatedAt = now
	that.ReadyAt = now
}

// ApplyEffects advances the turn once per TogglePlayer effect.
func (that *Game) ApplyEffects(effects []Effect) {
	for _, effect := range effects {
		if effect.Kind == EffectTogglePlayer {
			that.Turn = that.Turn.Next()
			that.MoveCount++
		}
	}
}

// IsReady reports whether the input cooldown has elapsed at now.
func (that *Game) IsReady(now time.Time) bool {
	return !now.Before(that.ReadyAt)
}
