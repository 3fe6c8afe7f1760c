package core

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrInvalidInput = errors.New("invalid bracket input")
)

// A Bracket is the state of a double elimination.
//
// The flat list of matches is the single source of truth.
// The rounds of the three segments are a view on it that is
// derived by Reconstruct and never edited by hand.
//
// A Bracket value is treated as an immutable snapshot. The
// engine functions return a new Bracket and leave their
// input untouched.
type Bracket struct {
	Teams   []Team
	Matches []Match

	WinnersRounds []Round
	LosersRounds  []Round
	FinalsRounds  []Round
}

// Returns a pointer to the match with the given ID
// inside of the bracket's match list
func (b *Bracket) Match(id string) (*Match, bool) {
	i := slices.IndexFunc(b.Matches, func(m Match) bool { return m.ID == id })
	if i < 0 {
		return nil, false
	}
	return &b.Matches[i], true
}

func (b *Bracket) Team(id string) (*Team, bool) {
	i := slices.IndexFunc(b.Teams, func(t Team) bool { return t.ID == id })
	if i < 0 {
		return nil, false
	}
	return &b.Teams[i], true
}

// Returns the matches that have both opponents and are
// waiting for their result
func (b *Bracket) PlayableMatches() []Match {
	playable := make([]Match, 0, 4)
	for _, m := range b.Matches {
		if m.IsReady() && !m.IsCompleted() {
			playable = append(playable, m)
		}
	}
	return playable
}

// Returns the teams with two losses
func (b *Bracket) Eliminated() []Team {
	eliminated := make([]Team, 0, len(b.Teams))
	for _, t := range b.Teams {
		if t.IsEliminated() {
			eliminated = append(eliminated, t)
		}
	}
	return eliminated
}

// Returns the tournament champion once the bracket is resolved.
//
// The champion is the winner of the reset match or, when no
// reset match is played, the winner of the grand final.
func (b *Bracket) Champion() (Team, bool) {
	reset, hasReset := b.Match(ResetMatchID)
	if hasReset && reset.IsCompleted() {
		return b.teamOrZero(reset.Winner)
	}

	final, ok := b.Match(GrandFinalID)
	if !ok || !final.IsCompleted() {
		return Team{}, false
	}
	if hasReset && reset.IsReady() {
		// The reset match is still to be played
		return Team{}, false
	}
	return b.teamOrZero(final.Winner)
}

// Returns true when the bracket has a champion
func (b *Bracket) IsResolved() bool {
	_, ok := b.Champion()
	return ok
}

func (b *Bracket) teamOrZero(id string) (Team, bool) {
	t, ok := b.Team(id)
	if !ok {
		return Team{}, false
	}
	return *t, true
}

// Returns a deep copy of the bracket's teams and matches
// with a freshly derived round view
func (b *Bracket) Clone() *Bracket {
	clone := Reconstruct(slices.Clone(b.Matches))
	clone.Teams = slices.Clone(b.Teams)
	return clone
}

func (b *Bracket) String() string {
	return fmt.Sprintf(
		"Bracket(%v teams, %v matches, %v/%v/%v rounds)",
		len(b.Teams),
		len(b.Matches),
		len(b.WinnersRounds),
		len(b.LosersRounds),
		len(b.FinalsRounds),
	)
}
