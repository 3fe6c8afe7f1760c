package core

import "fmt"

// The fixed topology of a double elimination for exactly
// 10 teams. Other bracket sizes are not supported.
const NumTeams = 10

const (
	GrandFinalID = "GRAND-FINAL"
	ResetMatchID = "RESET-MATCH"
)

// Number of matches per round of each segment
var (
	winnerRoundSizes = []int{2, 4, 2, 1}
	loserRoundSizes  = []int{2, 2, 2, 1, 1}
)

// Returns the key of the index-th (0-based) match in
// the given round (1-based) of a segment.
//
// The keys look like W-R2-M3 or L-R5-M1.
func MatchKey(segment Segment, round, index int) string {
	var prefix string
	switch segment {
	case Winners:
		prefix = "W"
	case Losers:
		prefix = "L"
	default:
		panic("match keys only exist for the winners and losers segments")
	}
	return fmt.Sprintf("%v-R%v-M%v", prefix, round, index+1)
}

// A Route holds the outgoing edges of a match.
//
// An empty Loser means the loser is eliminated
// or the match is terminal.
type Route struct {
	Winner string
	// The slot of the Winner match that the winner is
	// promoted into. AnySlot takes the first open slot.
	WinnerSlot int
	Loser      string
}

// The routing table of the 10 team bracket. The grand final
// and the reset match have no entry since the reset is not
// an edge but a decision (see Engine.Advance).
var routes = map[string]Route{
	"W-R1-M1": {Winner: "W-R2-M2", Loser: "L-R1-M1"},
	"W-R1-M2": {Winner: "W-R2-M3", Loser: "L-R1-M2"},
	"W-R2-M1": {Winner: "W-R3-M1", Loser: "L-R2-M1"},
	"W-R2-M2": {Winner: "W-R3-M1", Loser: "L-R1-M1"},
	"W-R2-M3": {Winner: "W-R3-M2", Loser: "L-R1-M2"},
	"W-R2-M4": {Winner: "W-R3-M2", Loser: "L-R2-M2"},
	"W-R3-M1": {Winner: "W-R4-M1", Loser: "L-R3-M1"},
	"W-R3-M2": {Winner: "W-R4-M1", Loser: "L-R3-M2"},
	"W-R4-M1": {Winner: GrandFinalID, WinnerSlot: FirstSlot, Loser: "L-R5-M1"},

	"L-R1-M1": {Winner: "L-R2-M1"},
	"L-R1-M2": {Winner: "L-R2-M2"},
	"L-R2-M1": {Winner: "L-R3-M1"},
	"L-R2-M2": {Winner: "L-R3-M2"},
	"L-R3-M1": {Winner: "L-R4-M1"},
	"L-R3-M2": {Winner: "L-R4-M1"},
	"L-R4-M1": {Winner: "L-R5-M1"},
	"L-R5-M1": {Winner: GrandFinalID, WinnerSlot: SecondSlot},
}

// Returns the route of a match. The second return value is
// false for matches without outgoing edges.
func RouteOf(matchID string) (Route, bool) {
	route, ok := routes[matchID]
	return route, ok
}

// The seeds (1-based) that are placed into the winners segment
// before any match is played. A 0 marks a slot that waits
// for a first round winner.
var seedPlacement = map[string][2]int{
	"W-R1-M1": {7, 10},
	"W-R1-M2": {8, 9},
	"W-R2-M1": {1, 2},
	"W-R2-M2": {3, 0},
	"W-R2-M3": {4, 0},
	"W-R2-M4": {5, 6},
}
