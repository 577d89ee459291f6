package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/rocketscienceinc/goban-backend/internal/apperror"
	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

type memoryGame struct {
	mu    sync.RWMutex
	games map[string]entity.Game
}

// NewMemoryGameRepository keeps games in process. Callers never share a stored value.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]entity.Game),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = copyGame(game)

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	stored := copyGame(&game)

	return &stored, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}

func copyGame(game *entity.Game) entity.Game {
	stored := *game
	stored.Stones = slices.Clone(game.Stones)
	if stored.Stones == nil {
		stored.Stones = []entity.Move{}
	}

	return stored
}
