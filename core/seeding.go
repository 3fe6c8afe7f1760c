package core

import (
	"fmt"

	"github.com/google/uuid"
)

// Seeds the teams by entry order.
//
// The returned teams are copies with seeds 1 to n and
// no losses. Teams without an ID get a random one.
// Duplicate IDs are rejected.
func seedTeams(teams []Team) ([]Team, error) {
	seeded := make([]Team, 0, len(teams))
	ids := make(map[string]struct{}, len(teams))

	for i, t := range teams {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if _, ok := ids[t.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate team id %q", ErrInvalidInput, t.ID)
		}
		ids[t.ID] = struct{}{}

		t.Seed = i + 1
		t.Losses = 0
		seeded = append(seeded, t)
	}

	return seeded, nil
}

// Returns the team ID of the given 1-based seed
func seedID(seeded []Team, seed int) string {
	return seeded[seed-1].ID
}
