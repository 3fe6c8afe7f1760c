package core

import (
	"cmp"
	"slices"
)

// Standings ranks the teams by how far they reached.
//
// Teams that dropped out in the same round are tied on the
// same rank. The champion comes first, followed by the teams
// that are still in the tournament and then the eliminated
// teams with the latest eliminations first. Tied teams are
// ordered by seed.
func Standings(b *Bracket) [][]Team {
	champion, resolved := b.Champion()

	lastLoss := make(map[string]Match)
	for _, m := range b.Matches {
		if !m.IsCompleted() || m.Loser == "" {
			continue
		}
		prev, ok := lastLoss[m.Loser]
		if !ok || eliminationStage(m) >= eliminationStage(prev) {
			lastLoss[m.Loser] = m
		}
	}

	ranks := make([][]Team, 0, 8)
	if resolved {
		ranks = append(ranks, []Team{champion})
	}

	alive := make([]Team, 0, len(b.Teams))
	stages := make(map[int][]Team)
	for _, t := range b.Teams {
		if resolved && t.ID == champion.ID {
			continue
		}
		out := t.IsEliminated() || resolved
		if !out {
			alive = append(alive, t)
			continue
		}
		stage := eliminationStage(lastLoss[t.ID])
		stages[stage] = append(stages[stage], t)
	}

	if len(alive) > 0 {
		ranks = append(ranks, alive)
	}

	stageKeys := make([]int, 0, len(stages))
	for k := range stages {
		stageKeys = append(stageKeys, k)
	}
	slices.Sort(stageKeys)
	for _, k := range slices.Backward(stageKeys) {
		ranks = append(ranks, stages[k])
	}

	for _, rank := range ranks {
		slices.SortFunc(rank, func(a, b Team) int { return cmp.Compare(a.Seed, b.Seed) })
	}

	return ranks
}

// Orders the matches by how late a loss in them puts a
// team out: losers rounds in order, then the finals
func eliminationStage(m Match) int {
	switch m.Segment {
	case Losers:
		return m.Round
	case Finals:
		return len(loserRoundSizes) + m.Round
	}
	return 0
}
