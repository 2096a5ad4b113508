package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Match is a game played out move by move from a starting board.
type Match struct {
	Start   Board  `json:"start"`
	Board   Board  `json:"board"`
	Moves   []Move `json:"moves"`
	Winner  Mark   `json:"winner"`
	Outcome int    `json:"outcome"`
	Status  string `json:"status"`
}

func NewMatch(start Board) *Match {
	return &Match{
		Start:  start,
		Board:  start,
		Moves:  []Move{},
		Status: StatusOngoing,
	}
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Match) IsDraw() bool {
	return that.IsFinished() && that.Winner == Empty
}
