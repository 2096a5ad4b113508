package entity

// Result - the best achievable outcome from a position and the move that achieves it.
// Move is NoMove on terminal boards.
type Result struct {
	Outcome int  `json:"outcome"`
	Move    Move `json:"move"`
}
