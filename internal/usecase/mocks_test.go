package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

type mockGameRepo struct {
	mock.Mock
}

func (m *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(result *entity.MoveResult) {
	m.Called(result)
}

func (m *mockNotifier) CloseGame(gameID string) {
	m.Called(gameID)
}

type fakeClock struct {
	now time.Time
}

func (that *fakeClock) Now() time.Time { return that.now }

func (that *fakeClock) Advance(d time.Duration) { that.now = that.now.Add(d) }
