package core

// A Team is a competitor of the tournament.
//
// Losses counts the losses in the double elimination.
// A team is out of the tournament at two losses.
type Team struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Seed   int    `json:"seed"`
	Losses int    `json:"losses"`
}

// The number of losses that eliminate a team
const EliminationLosses = 2

func (t *Team) IsEliminated() bool {
	return t.Losses >= EliminationLosses
}
