package entity

// EffectKind names one observable board change.
type EffectKind string

const (
	EffectAddPiece     EffectKind = "add_piece"
	EffectRemovePiece  EffectKind = "remove_piece"
	EffectTogglePlayer EffectKind = "toggle_player"
)

// Effect is a read-only fact about a resolved move. Move is set for piece effects
// and nil for TogglePlayer.
type Effect struct {
	Kind EffectKind `json:"kind"`
	Move *Move      `json:"move,omitempty"`
}

func AddPiece(move Move) Effect {
	return Effect{Kind: EffectAddPiece, Move: &move}
}

func RemovePiece(move Move) Effect {
	return Effect{Kind: EffectRemovePiece, Move: &move}
}

func TogglePlayer() Effect {
	return Effect{Kind: EffectTogglePlayer}
}

// MoveResult is what an accepted move produced, as seen by the feed and the REST API.
type MoveResult struct {
	GameID    string   `json:"game_id"`
	Move      Move     `json:"move"`
	Effects   []Effect `json:"effects"`
	Turn      Player   `json:"turn"`
	MoveCount int      `json:"move_count"`
}
