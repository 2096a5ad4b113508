package entity

import (
	"errors"
	"fmt"
	"strings"
)

type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

const (
	OutcomeXWins = 1
	OutcomeOWins = -1
	OutcomeDraw  = 0
)

const BoardSize = 3

var ErrInvalidBoard = errors.New("invalid board")

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Opponent - returns the other player's mark, Empty stays Empty.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// Move - zero-based cell coordinates.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove - the absent move, used when the game is already over.
var NoMove = Move{Row: -1, Col: -1}

func (that Move) IsNone() bool {
	return that == NoMove
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	if that.IsNone() {
		return "none"
	}
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is a value type: assigning or passing it copies every cell.
type Board [BoardSize][BoardSize]Mark

func (that Board) Cell(move Move) Mark {
	return that[move.Row][move.Col]
}

func (that Board) IsEmpty(move Move) bool {
	return that.Cell(move) == Empty
}

func (that Board) Count(mark Mark) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}
	return count
}

func (that Board) Occupied() int {
	return BoardSize*BoardSize - that.Count(Empty)
}

// Key - row-major encoding of the board, "-" for empty cells.
func (that Board) Key() string {
	var sb strings.Builder
	sb.Grow(BoardSize * BoardSize)

	for _, row := range that {
		for _, cell := range row {
			switch cell {
			case PlayerX:
				sb.WriteByte('X')
			case PlayerO:
				sb.WriteByte('O')
			default:
				sb.WriteByte('-')
			}
		}
	}

	return sb.String()
}

// ParseBoard - builds a board from its Key encoding.
func ParseBoard(key string) (Board, error) {
	var board Board

	if len(key) != BoardSize*BoardSize {
		return board, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, BoardSize*BoardSize, len(key))
	}

	for i := 0; i < len(key); i++ {
		var mark Mark
		switch key[i] {
		case 'X':
			mark = PlayerX
		case 'O':
			mark = PlayerO
		case '-':
			mark = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q at %d", ErrInvalidBoard, key[i], i)
		}
		board[i/BoardSize][i%BoardSize] = mark
	}

	return board, nil
}
