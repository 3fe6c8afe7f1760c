package core

import (
	"fmt"
	"slices"
)

// Validate checks that a bracket, e.g. one read back from a
// store, has the 10 team topology: the team and match counts,
// routing edges that point at existing matches without forming
// a cycle and the two finals as the only terminal matches.
func Validate(b *Bracket) error {
	if len(b.Teams) != NumTeams {
		return fmt.Errorf("%w: %v teams", ErrInvalidTopology, len(b.Teams))
	}
	if len(b.Matches) != numMatches() {
		return fmt.Errorf("%w: %v matches", ErrInvalidTopology, len(b.Matches))
	}

	graph, err := NewRoutingGraph(b.Matches)
	if err != nil {
		return err
	}

	terminals := graph.Terminals()
	slices.Sort(terminals)
	if !slices.Equal(terminals, []string{GrandFinalID, ResetMatchID}) {
		return fmt.Errorf("%w: terminal matches %v", ErrInvalidTopology, terminals)
	}

	for _, m := range b.Matches {
		for _, id := range []string{m.Slot1, m.Slot2, m.Winner, m.Loser} {
			if id == "" {
				continue
			}
			if _, ok := b.Team(id); !ok {
				return fmt.Errorf("%w: match %v references unknown team %q", ErrInvalidTopology, m.ID, id)
			}
		}
	}

	return nil
}
