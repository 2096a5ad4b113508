package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.Empty
)

func TestInitialState(t *testing.T) {
	// Given: the starting board
	board := InitialState()

	// Then: every cell is empty and X moves first
	assert.Equal(t, 9, board.Count(entity.Empty))
	assert.Equal(t, entity.PlayerX, CurrentPlayer(board))
	assert.Len(t, LegalMoves(board), 9)
	assert.False(t, IsTerminal(board))
}

func TestCurrentPlayer(t *testing.T) {
	t.Run("Alternates after every move", func(t *testing.T) {
		// Given: the starting board
		board := InitialState()

		for _, move := range LegalMoves(InitialState()) {
			before := CurrentPlayer(board)

			// When: the current player moves
			next, err := ApplyMove(board, move)
			require.NoError(t, err)

			// Then: the turn passes to the opponent
			assert.Equal(t, before.Opponent(), CurrentPlayer(next))
			assert.Equal(t, before, next.Cell(move))
			board = next
		}
	})

	t.Run("O moves when X has one more mark", func(t *testing.T) {
		board := entity.Board{
			{x, e, e},
			{e, e, e},
			{e, e, e},
		}

		assert.Equal(t, entity.PlayerO, CurrentPlayer(board))
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("Row-major order of empty cells", func(t *testing.T) {
		// Given: a board with the center and a corner taken
		board := entity.Board{
			{x, e, e},
			{e, o, e},
			{e, e, e},
		}

		// When: listing legal moves
		moves := LegalMoves(board)

		// Then: the remaining cells come back row by row
		expected := []entity.Move{
			{Row: 0, Col: 1}, {Row: 0, Col: 2},
			{Row: 1, Col: 0}, {Row: 1, Col: 2},
			{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
		}
		assert.Equal(t, expected, moves)
		assert.Len(t, moves, 9-board.Occupied())
	})

	t.Run("Full board has no moves", func(t *testing.T) {
		board := entity.Board{
			{x, o, x},
			{x, o, o},
			{o, x, x},
		}

		assert.Empty(t, LegalMoves(board))
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("Places the current player's mark on a copy", func(t *testing.T) {
		// Given: a board where O is to move
		board := entity.Board{
			{x, e, e},
			{e, e, e},
			{e, e, e},
		}

		// When: O plays the center
		next, err := ApplyMove(board, entity.Move{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the new board has the mark and the input is untouched
		assert.Equal(t, entity.PlayerO, next.Cell(entity.Move{Row: 1, Col: 1}))
		assert.Equal(t, entity.Empty, board.Cell(entity.Move{Row: 1, Col: 1}))
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board with X in the corner
		board := entity.Board{
			{x, e, e},
			{e, e, e},
			{e, e, e},
		}
		snapshot := board

		// When: O tries to play the same cell
		next, err := ApplyMove(board, entity.Move{Row: 0, Col: 0})

		// Then: ErrInvalidMove is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Contains(t, err.Error(), "already occupied")
		assert.Equal(t, snapshot, board)
		assert.Equal(t, snapshot, next)
	})

	t.Run("Error on out of range cell", func(t *testing.T) {
		_, err := ApplyMove(InitialState(), entity.Move{Row: 3, Col: 0})

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("NoMove returns the board unchanged", func(t *testing.T) {
		board := entity.Board{
			{x, x, x},
			{o, o, e},
			{e, e, e},
		}

		next, err := ApplyMove(board, entity.NoMove)

		require.NoError(t, err)
		assert.Equal(t, board, next)
	})
}

func TestWinner(t *testing.T) {
	t.Run("Detects every line", func(t *testing.T) {
		for _, line := range WinLines {
			for _, mark := range []entity.Mark{x, o} {
				// Given: a board with only this line filled
				var board entity.Board
				for _, cell := range line {
					board[cell.Row][cell.Col] = mark
				}

				// Then: the line's owner is the winner
				assert.Equal(t, mark, Winner(board), "line %v", line)
			}
		}
	})

	t.Run("Top row with the rest empty", func(t *testing.T) {
		board := entity.Board{
			{x, x, x},
			{e, e, e},
			{e, e, e},
		}

		assert.Equal(t, entity.PlayerX, Winner(board))
	})

	t.Run("Main diagonal with the rest empty", func(t *testing.T) {
		board := entity.Board{
			{x, e, e},
			{e, x, e},
			{e, e, x},
		}

		assert.Equal(t, entity.PlayerX, Winner(board))
	})

	t.Run("Diagonal with other cells occupied", func(t *testing.T) {
		board := entity.Board{
			{x, o, e},
			{o, x, e},
			{e, e, x},
		}

		assert.Equal(t, entity.PlayerX, Winner(board))
	})

	t.Run("Right column after mixed rows", func(t *testing.T) {
		board := entity.Board{
			{x, x, o},
			{e, x, o},
			{e, e, o},
		}

		assert.Equal(t, entity.PlayerO, Winner(board))
		line, ok := WinningLine(board)
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, line[0])
	})

	t.Run("No winner on an ongoing board", func(t *testing.T) {
		board := entity.Board{
			{x, o, e},
			{e, x, e},
			{e, e, o},
		}

		assert.Equal(t, entity.Empty, Winner(board))
		_, ok := WinningLine(board)
		assert.False(t, ok)
	})
}

func TestIsTerminal(t *testing.T) {
	t.Run("Full board without a winner is a draw", func(t *testing.T) {
		// Given: a drawn board
		board := entity.Board{
			{x, o, x},
			{x, o, o},
			{o, x, x},
		}

		// Then: it is terminal with no winner and zero utility
		assert.True(t, IsTerminal(board))
		assert.Equal(t, entity.Empty, Winner(board))
		assert.Equal(t, entity.OutcomeDraw, Utility(board))
		assert.Equal(t, entity.StatusFinished, Status(board))
	})

	t.Run("Win before the board is full", func(t *testing.T) {
		board := entity.Board{
			{o, o, o},
			{x, x, e},
			{x, e, e},
		}

		assert.True(t, IsTerminal(board))
		assert.Equal(t, entity.OutcomeOWins, Utility(board))
	})

	t.Run("Ongoing board", func(t *testing.T) {
		board := entity.Board{
			{x, e, e},
			{e, o, e},
			{e, e, e},
		}

		assert.False(t, IsTerminal(board))
		assert.Equal(t, entity.StatusOngoing, Status(board))
	})
}

func TestUtility(t *testing.T) {
	board := entity.Board{
		{x, o, e},
		{o, x, e},
		{e, e, x},
	}

	assert.Equal(t, entity.OutcomeXWins, Utility(board))
}
