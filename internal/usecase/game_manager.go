package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/goban-backend/internal/apperror"
	"github.com/rocketscienceinc/goban-backend/internal/entity"
	"github.com/rocketscienceinc/goban-backend/internal/goban"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type notifier interface {
	Notify(result *entity.MoveResult)
	CloseGame(gameID string)
}

// Cooldown is how long input is ignored after a game starts and after each accepted move.
type Cooldown struct {
	Start time.Duration
	Move  time.Duration
}

type GameManager struct {
	logger   *zap.SugaredLogger
	gameRepo gameRepo
	resolver *goban.Resolver
	notifier notifier
	cooldown Cooldown
	now      func() time.Time

	locksMu sync.Mutex
	locks   map[string]*gameLock
}

// gameLock is dropped from the map once no caller holds or waits for it.
type gameLock struct {
	mu   sync.Mutex
	refs int
}

type Option func(*GameManager)

func WithResolver(resolver *goban.Resolver) Option {
	return func(m *GameManager) { m.resolver = resolver }
}

func WithNotifier(n notifier) Option {
	return func(m *GameManager) { m.notifier = n }
}

func WithCooldown(cooldown Cooldown) Option {
	return func(m *GameManager) { m.cooldown = cooldown }
}

func WithClock(now func() time.Time) Option {
	return func(m *GameManager) { m.now = now }
}

func NewGameManager(logger *zap.SugaredLogger, gameRepo gameRepo, opts ...Option) *GameManager {
	manager := &GameManager{
		logger:   logger,
		gameRepo: gameRepo,
		resolver: goban.NewResolver(),
		notifier: nopNotifier{},
		now:      time.Now,
		locks:    make(map[string]*gameLock),
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	now := that.now()

	game := entity.NewGame(uuid.NewString(), now)
	game.ReadyAt = now.Add(that.cooldown.Start)

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Infow("game created", "game_id", game.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// ResetGame is the "new game" action: the board is emptied in place.
func (that *GameManager) ResetGame(ctx context.Context, id string) (*entity.Game, error) {
	unlock := that.lock(id)
	defer unlock()

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	now := that.now()
	game.Reset(now)
	game.ReadyAt = now.Add(that.cooldown.Start)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Infow("game reset", "game_id", id)

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.notifier.CloseGame(id)

	that.logger.Infow("game deleted", "game_id", id)

	return nil
}

// MakeMove resolves move on the game's board. The whole load, resolve and store
// sequence runs under the game's lock.
func (that *GameManager) MakeMove(ctx context.Context, gameID string, move entity.Move) (*entity.MoveResult, error) {
	log := that.logger.With("method", "MakeMove", "game_id", gameID)

	unlock := that.lock(gameID)
	defer unlock()

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if game.Turn != move.Player {
		return nil, fmt.Errorf("%w: %s to play", apperror.ErrNotYourTurn, game.Turn)
	}

	now := that.now()
	if !game.IsReady(now) {
		return nil, apperror.ErrCooldown
	}

	board := goban.NewBoardFromStones(game.Stones)

	effects := that.resolver.Resolve(board, move)
	if len(effects) == 0 {
		return nil, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move.At)
	}

	game.ApplyEffects(effects)
	game.Stones = board.Stones()
	game.UpdatedAt = now
	game.ReadyAt = now.Add(that.cooldown.Move)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	result := &entity.MoveResult{
		GameID:    game.ID,
		Move:      move,
		Effects:   effects,
		Turn:      game.Turn,
		MoveCount: game.MoveCount,
	}

	log.Debugw("move resolved", "move", move.At.String(), "player", move.Player.String(), "removed", len(effects)-2)

	// Published under the game lock so the feed sees moves in the order they were accepted.
	that.notifier.Notify(result)

	return result, nil
}

// IsRejection reports whether err is a refused move rather than a failure.
func IsRejection(err error) bool {
	return errors.Is(err, apperror.ErrNotYourTurn) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrCooldown)
}

func (that *GameManager) lock(id string) func() {
	that.locksMu.Lock()
	l, ok := that.locks[id]
	if !ok {
		l = &gameLock{}
		that.locks[id] = l
	}
	l.refs++
	that.locksMu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		that.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(that.locks, id)
		}
		that.locksMu.Unlock()
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(*entity.MoveResult) {}

func (nopNotifier) CloseGame(string) {}
