package minimax

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Solver answers optimal-move queries, reusing cached results for positions it has seen.
type Solver struct {
	logger *slog.Logger
	cache  Cache
}

// NewSolver - a nil cache disables caching.
func NewSolver(logger *slog.Logger, cache Cache) *Solver {
	if cache == nil {
		cache = noCache{}
	}

	return &Solver{
		logger: logger.With("component", "solver"),
		cache:  cache,
	}
}

func (that *Solver) Solve(ctx context.Context, board entity.Board) (entity.Result, error) {
	log := that.logger.With("method", "Solve", "board", board.Key())

	if err := ctx.Err(); err != nil {
		return entity.Result{}, err
	}

	cached, err := that.cache.Get(ctx, board)
	switch {
	case err == nil:
		log.Debug("cache hit", "outcome", cached.Outcome, "move", cached.Move.String())
		return cached, nil
	case !errors.Is(err, ErrCacheMiss):
		log.Error("failed to read cache", "error", err)
	}

	result, stats := Search(board)
	log.Debug("search finished", "outcome", result.Outcome, "move", result.Move.String(), "nodes", stats.Nodes)

	if err = that.cache.Set(ctx, board, result); err != nil {
		log.Error("failed to write cache", "error", err)
	}

	return result, nil
}

func (that *Solver) OptimalMove(ctx context.Context, board entity.Board) (entity.Move, error) {
	result, err := that.Solve(ctx, board)
	if err != nil {
		return entity.NoMove, err
	}

	return result.Move, nil
}
