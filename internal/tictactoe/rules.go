package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// WinLines - the 3 rows, 3 columns and 2 diagonals.
var WinLines = [8][3]entity.Move{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// InitialState - returns the empty starting board.
func InitialState() entity.Board {
	return entity.Board{}
}

// CurrentPlayer - X moves whenever both players have placed the same number of marks.
func CurrentPlayer(board entity.Board) entity.Mark {
	if board.Count(entity.PlayerX) == board.Count(entity.PlayerO) {
		return entity.PlayerX
	}
	return entity.PlayerO
}

// LegalMoves - all empty cells in row-major order.
func LegalMoves(board entity.Board) []entity.Move {
	moves := make([]entity.Move, 0, entity.BoardSize*entity.BoardSize)

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			move := entity.Move{Row: row, Col: col}
			if board.IsEmpty(move) {
				moves = append(moves, move)
			}
		}
	}

	return moves
}

// ApplyMove - returns a new board with the current player's mark placed at move.
// The input board is never modified. NoMove returns the board unchanged.
func ApplyMove(board entity.Board, move entity.Move) (entity.Board, error) {
	if move.IsNone() {
		return board, nil
	}

	if err := validateMove(board, move); err != nil {
		return board, err
	}

	next := board
	next[move.Row][move.Col] = CurrentPlayer(board)

	return next, nil
}

// validateMove - checks if the move targets an empty cell on the board.
func validateMove(board entity.Board, move entity.Move) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidMove, move)
	}

	if !board.IsEmpty(move) {
		return fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidMove, move)
	}

	return nil
}

// Winner - the mark completing any of the 8 lines, or Empty.
// Every line is checked; a failed row never hides a later column or diagonal.
func Winner(board entity.Board) entity.Mark {
	if line, ok := WinningLine(board); ok {
		return board.Cell(line[0])
	}
	return entity.Empty
}

// WinningLine - the first completed line, if any.
func WinningLine(board entity.Board) ([3]entity.Move, bool) {
	for _, line := range WinLines {
		a, b, c := board.Cell(line[0]), board.Cell(line[1]), board.Cell(line[2])
		if a != entity.Empty && a == b && b == c {
			return line, true
		}
	}

	return [3]entity.Move{}, false
}

func IsTerminal(board entity.Board) bool {
	if Winner(board) != entity.Empty {
		return true
	}

	return board.Count(entity.Empty) == 0
}

// Utility - +1 if X has won, -1 if O has won, 0 otherwise.
// Only meaningful on terminal boards.
func Utility(board entity.Board) int {
	switch Winner(board) {
	case entity.PlayerX:
		return entity.OutcomeXWins
	case entity.PlayerO:
		return entity.OutcomeOWins
	default:
		return entity.OutcomeDraw
	}
}

// Status - finished for terminal boards, ongoing otherwise.
func Status(board entity.Board) string {
	if IsTerminal(board) {
		return entity.StatusFinished
	}
	return entity.StatusOngoing
}
