package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

const solutionKeyPrefix = "solution:"

type SolutionRepository interface {
	Get(ctx context.Context, board entity.Board) (entity.Result, error)
	Set(ctx context.Context, board entity.Board, result entity.Result) error
	Delete(ctx context.Context, board entity.Board) error
}

type dbSolution struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSolutionRepository - ttl of 0 keeps solutions forever.
func NewSolutionRepository(client *redis.Client, ttl time.Duration) SolutionRepository {
	return &dbSolution{
		client: client,
		ttl:    ttl,
	}
}

func solutionKey(board entity.Board) string {
	return solutionKeyPrefix + board.Key()
}

func (that *dbSolution) Set(ctx context.Context, board entity.Board, result entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal solution: %w", err)
	}

	if err = that.client.Set(ctx, solutionKey(board), resultJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set solution: %w", err)
	}

	return nil
}

func (that *dbSolution) Get(ctx context.Context, board entity.Board) (entity.Result, error) {
	response, err := that.client.Get(ctx, solutionKey(board)).Result()

	if errors.Is(err, redis.Nil) {
		return entity.Result{}, minimax.ErrCacheMiss
	}

	if err != nil {
		return entity.Result{}, fmt.Errorf("failed to get solution: %w", err)
	}

	var result entity.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return entity.Result{}, fmt.Errorf("failed to unmarshal solution: %w", err)
	}

	return result, nil
}

func (that *dbSolution) Delete(ctx context.Context, board entity.Board) error {
	if err := that.client.Del(ctx, solutionKey(board)).Err(); err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}

	return nil
}
