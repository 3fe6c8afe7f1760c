package core

import (
	"cmp"
	"slices"
)

// Reconstruct derives the round view of the three segments
// from the flat match list.
//
// The matches are grouped by segment and round, the rounds
// are sorted by their number and the matches of a round by
// their layout index. The flat list is kept as it is.
// Reconstructing from the Matches of a reconstructed bracket
// yields the same rounds.
func Reconstruct(matches []Match) *Bracket {
	return &Bracket{
		Matches:       matches,
		WinnersRounds: groupRounds(matches, Winners),
		LosersRounds:  groupRounds(matches, Losers),
		FinalsRounds:  groupRounds(matches, Finals),
	}
}

func groupRounds(matches []Match, segment Segment) []Round {
	rounds := make([]Round, 0, 5)
	roundIndex := make(map[int]int)

	for _, m := range matches {
		if m.Segment != segment {
			continue
		}
		i, ok := roundIndex[m.Round]
		if !ok {
			i = len(rounds)
			roundIndex[m.Round] = i
			rounds = append(rounds, Round{Number: m.Round})
		}
		rounds[i].Matches = append(rounds[i].Matches, m)
	}

	slices.SortFunc(rounds, func(a, b Round) int {
		return cmp.Compare(a.Number, b.Number)
	})
	for _, r := range rounds {
		slices.SortStableFunc(r.Matches, func(a, b Match) int {
			return cmp.Compare(a.Position.Index, b.Position.Index)
		})
	}

	return rounds
}
