package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

var (
	ErrAddrNotFound = errors.New("redis host is empty")
	ErrNotDraw      = errors.New("optimal self-play did not end in a draw")
)

// RunApp - plays one optimal game against itself from the initial state and checks it is a draw.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	cache, closeCache, err := newCache(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeCache()

	solver := minimax.NewSolver(logger, cache)
	bot := service.NewBotService(solver)
	selfPlay := usecase.NewSelfPlay(logger, bot)

	match, err := selfPlay.Run(ctx, tictactoe.InitialState())
	if err != nil {
		return fmt.Errorf("self-play failed: %w", err)
	}

	if match.Outcome != entity.OutcomeDraw {
		return fmt.Errorf("%w: outcome %d, board %s", ErrNotDraw, match.Outcome, match.Board.Key())
	}

	log.Info("self-play finished in a draw", "moves", len(match.Moves), "cache", conf.Cache.Backend)

	return nil
}

// newCache - builds the configured solution cache and the function releasing it.
func newCache(ctx context.Context, logger *slog.Logger, conf *config.Config) (minimax.Cache, func(), error) {
	log := logger.With("component", "app", "method", "newCache")

	switch conf.Cache.Backend {
	case config.CacheRedis:
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeFn := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewSolutionRepository(redisStorage.Connection, conf.Cache.TTL), closeFn, nil
	case config.CacheNone:
		return nil, func() {}, nil
	default:
		return minimax.NewMemoryCache(), func() {}, nil
	}
}
