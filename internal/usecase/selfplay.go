package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type botService interface {
	MakeTurn(ctx context.Context, board entity.Board) (entity.Board, entity.Move, error)
}

// SelfPlay plays the bot against itself until the game ends.
type SelfPlay struct {
	logger *slog.Logger
	bot    botService
}

func NewSelfPlay(logger *slog.Logger, bot botService) *SelfPlay {
	return &SelfPlay{
		logger: logger.With("component", "selfplay"),
		bot:    bot,
	}
}

func (that *SelfPlay) Run(ctx context.Context, start entity.Board) (*entity.Match, error) {
	log := that.logger.With("method", "Run")

	match := entity.NewMatch(start)
	if tictactoe.IsTerminal(start) {
		finish(match)
		return match, apperror.ErrGameFinished
	}

	for !tictactoe.IsTerminal(match.Board) {
		player := tictactoe.CurrentPlayer(match.Board)

		next, move, err := that.bot.MakeTurn(ctx, match.Board)
		if err != nil {
			return match, fmt.Errorf("failed make turn for %s: %w", player, err)
		}

		match.Board = next
		match.Moves = append(match.Moves, move)

		log.Debug("turn played", "player", player.String(), "move", move.String(), "board", next.Key())
	}

	finish(match)

	log.Info("match finished",
		"winner", match.Winner.String(),
		"outcome", match.Outcome,
		"moves", len(match.Moves),
		"board", match.Board.Key(),
	)

	return match, nil
}

func finish(match *entity.Match) {
	match.Winner = tictactoe.Winner(match.Board)
	match.Outcome = tictactoe.Utility(match.Board)
	match.Status = entity.StatusFinished
}
