package core

import "fmt"

// The Engine builds and advances double elimination brackets.
//
// It holds no bracket state. Every call consumes a bracket
// value and returns a new one. Callers that share a stored
// bracket have to serialize their calls themselves.
type Engine struct {
	Events EventSink
}

func NewEngine(events EventSink) *Engine {
	if events == nil {
		events = NopEvents{}
	}
	return &Engine{Events: events}
}

var defaultEngine = NewEngine(nil)

// Generate builds a bracket for exactly 10 teams without
// emitting events. See Engine.Generate.
func Generate(teams []Team) (*Bracket, error) {
	return defaultEngine.Generate(teams)
}

// Builds the complete bracket for the teams.
//
// The teams are seeded by their order. The 4 lowest seeds
// play the first winners round, the 6 highest seeds enter
// in the second round.
//
// Returns an error wrapping ErrInvalidInput when there are
// not exactly 10 teams.
func (e *Engine) Generate(teams []Team) (*Bracket, error) {
	if len(teams) != NumTeams {
		return nil, fmt.Errorf(
			"%w: a double elimination needs exactly %v teams, got %v",
			ErrInvalidInput,
			NumTeams,
			len(teams),
		)
	}

	seeded, err := seedTeams(teams)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, numMatches())
	matches = append(matches, createSegment(Winners, winnerRoundSizes)...)
	matches = append(matches, createSegment(Losers, loserRoundSizes)...)
	matches = append(matches, createFinals()...)

	for i := range matches {
		m := &matches[i]
		seeds, ok := seedPlacement[m.ID]
		if !ok {
			continue
		}
		for _, seed := range seeds {
			if seed > 0 {
				m.fill(seedID(seeded, seed))
			}
		}
	}

	if _, err := NewRoutingGraph(matches); err != nil {
		return nil, err
	}

	bracket := Reconstruct(matches)
	bracket.Teams = seeded

	return bracket, nil
}

func createSegment(segment Segment, roundSizes []int) []Match {
	matches := make([]Match, 0, sum(roundSizes))
	for r, size := range roundSizes {
		round := r + 1
		for i := range size {
			id := MatchKey(segment, round, i)
			route := routes[id]
			match := Match{
				ID:             id,
				Round:          round,
				Segment:        segment,
				Status:         Pending,
				FeedsInto:      route.Winner,
				LoserFeedsInto: route.Loser,
				Position:       Position{Round: round, Index: i},
			}
			matches = append(matches, match)
		}
	}
	return matches
}

// The grand final and the reset match. Neither has routing
// edges. The reset match stays empty until the grand final
// result asks for it.
func createFinals() []Match {
	final := Match{
		ID:       GrandFinalID,
		Round:    1,
		Segment:  Finals,
		Status:   Pending,
		Position: Position{Round: 1, Index: 0},
	}
	reset := Match{
		ID:       ResetMatchID,
		Round:    2,
		Segment:  Finals,
		Status:   Pending,
		Position: Position{Round: 2, Index: 0},
	}
	return []Match{final, reset}
}

func numMatches() int {
	return sum(winnerRoundSizes) + sum(loserRoundSizes) + 2
}

func sum(s []int) int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}
