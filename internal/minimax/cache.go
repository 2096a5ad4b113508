package minimax

import (
	"context"
	"errors"
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrCacheMiss = errors.New("position not cached")

type Cache interface {
	Get(ctx context.Context, board entity.Board) (entity.Result, error)
	Set(ctx context.Context, board entity.Board, result entity.Result) error
}

// MemoryCache keeps solved positions in process memory.
type MemoryCache struct {
	mu        sync.RWMutex
	positions map[entity.Board]entity.Result
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		positions: make(map[entity.Board]entity.Result),
	}
}

func (that *MemoryCache) Get(_ context.Context, board entity.Board) (entity.Result, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	result, ok := that.positions[board]
	if !ok {
		return entity.Result{}, ErrCacheMiss
	}

	return result, nil
}

func (that *MemoryCache) Set(_ context.Context, board entity.Board, result entity.Result) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.positions[board] = result

	return nil
}

func (that *MemoryCache) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.positions)
}

// noCache never stores anything.
type noCache struct{}

func (noCache) Get(context.Context, entity.Board) (entity.Result, error) {
	return entity.Result{}, ErrCacheMiss
}

func (noCache) Set(context.Context, entity.Board, entity.Result) error {
	return nil
}
