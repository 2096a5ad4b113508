package minimax

import (
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	// below any reachable outcome
	lowestOutcome = entity.OutcomeOWins - 1
	// above any reachable outcome
	highestOutcome = entity.OutcomeXWins + 1
)

// Stats - counters collected during a single search.
type Stats struct {
	Nodes int `json:"nodes"`
}

type search struct {
	stats Stats
}

// Maximize - best result for X from board, assuming O answers optimally.
func Maximize(board entity.Board) entity.Result {
	s := &search{}
	return s.maximize(board)
}

// Minimize - best result for O from board, assuming X answers optimally.
func Minimize(board entity.Board) entity.Result {
	s := &search{}
	return s.minimize(board)
}

// OptimalMove - the move for the player to move, or NoMove on a finished board.
func OptimalMove(board entity.Board) entity.Move {
	result, _ := Search(board)
	return result.Move
}

// Search - runs the side-appropriate search from board and reports how many positions it visited.
func Search(board entity.Board) (entity.Result, Stats) {
	s := &search{}

	if tictactoe.IsTerminal(board) {
		s.stats.Nodes++
		return entity.Result{Outcome: tictactoe.Utility(board), Move: entity.NoMove}, s.stats
	}

	var result entity.Result
	if tictactoe.CurrentPlayer(board) == entity.PlayerX {
		result = s.maximize(board)
	} else {
		result = s.minimize(board)
	}

	return result, s.stats
}

func (that *search) maximize(board entity.Board) entity.Result {
	that.stats.Nodes++

	if tictactoe.IsTerminal(board) {
		return entity.Result{Outcome: tictactoe.Utility(board), Move: entity.NoMove}
	}

	best := entity.Result{Outcome: lowestOutcome, Move: entity.NoMove}
	for _, move := range tictactoe.LegalMoves(board) {
		response := that.minimize(that.apply(board, move))
		if response.Outcome > best.Outcome {
			best = entity.Result{Outcome: response.Outcome, Move: move}
		}

		if best.Outcome == entity.OutcomeXWins {
			break
		}
	}

	return best
}

func (that *search) minimize(board entity.Board) entity.Result {
	that.stats.Nodes++

	if tictactoe.IsTerminal(board) {
		return entity.Result{Outcome: tictactoe.Utility(board), Move: entity.NoMove}
	}

	best := entity.Result{Outcome: highestOutcome, Move: entity.NoMove}
	for _, move := range tictactoe.LegalMoves(board) {
		response := that.maximize(that.apply(board, move))
		if response.Outcome < best.Outcome {
			best = entity.Result{Outcome: response.Outcome, Move: move}
		}

		if best.Outcome == entity.OutcomeOWins {
			break
		}
	}

	return best
}

// apply - moves come from LegalMoves, so ApplyMove cannot fail here.
func (that *search) apply(board entity.Board, move entity.Move) entity.Board {
	next, err := tictactoe.ApplyMove(board, move)
	if err != nil {
		panic(err)
	}
	return next
}
