package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(ctx context.Context, board entity.Board) (entity.Board, entity.Move, error)
}

type solver interface {
	OptimalMove(ctx context.Context, board entity.Board) (entity.Move, error)
}

type botService struct {
	solver solver
}

func NewBotService(solver solver) BotService {
	return &botService{
		solver: solver,
	}
}

// MakeTurn - plays the optimal move for whichever player is to move.
func (that *botService) MakeTurn(ctx context.Context, board entity.Board) (entity.Board, entity.Move, error) {
	if tictactoe.IsTerminal(board) {
		return board, entity.NoMove, ErrNoAvailableMoves
	}

	move, err := that.solver.OptimalMove(ctx, board)
	if err != nil {
		return board, entity.NoMove, fmt.Errorf("failed to find move: %w", err)
	}

	if move.IsNone() {
		return board, entity.NoMove, ErrNoAvailableMoves
	}

	next, err := tictactoe.ApplyMove(board, move)
	if err != nil {
		return board, entity.NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return next, move, nil
}
