package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/rocketscienceinc/goban-backend/internal/config"
	"github.com/rocketscienceinc/goban-backend/internal/goban"
	"github.com/rocketscienceinc/goban-backend/internal/repository"
	"github.com/rocketscienceinc/goban-backend/internal/repository/storage"
	"github.com/rocketscienceinc/goban-backend/internal/usecase"
	"github.com/rocketscienceinc/goban-backend/transport/rest"
	"github.com/rocketscienceinc/goban-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *zap.SugaredLogger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Infow("Received signal, shutting down", "signal", sig.String())
		cancel()
	}()

	policy, err := goban.PolicyByName(conf.CapturePolicy)
	if err != nil {
		return fmt.Errorf("invalid capture policy: %w", err)
	}

	gameRepo, closeRepo, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeRepo(); closeErr != nil {
			log.Errorw("could not close game storage", "error", closeErr)
		}
	}()

	hub := websocket.NewHub(logger)
	defer hub.Close()

	gameManager := usecase.NewGameManager(logger, gameRepo,
		usecase.WithResolver(goban.NewResolver(goban.WithCapturePolicy(policy))),
		usecase.WithNotifier(hub),
		usecase.WithCooldown(usecase.Cooldown{Start: conf.Cooldown.Start, Move: conf.Cooldown.Move}),
	)

	log.Infow("Starting HTTP server",
		"port", conf.HTTPPort, "storage", conf.Storage, "capture_policy", conf.CapturePolicy)

	if err = rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gameManager, hub)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(redisStorage.Connection, conf.Redis.GameTTL), redisStorage.Close, nil
}
