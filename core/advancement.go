package core

import (
	"fmt"
	"slices"
)

// Advance records a match result without emitting events.
// See Engine.Advance.
func Advance(b *Bracket, matchID, winnerID, loserID string, score1, score2 int) *Bracket {
	return defaultEngine.Advance(b, matchID, winnerID, loserID, score1, score2)
}

// Start marks a match as in progress. See Engine.Start.
func Start(b *Bracket, matchID string) (*Bracket, error) {
	return defaultEngine.Start(b, matchID)
}

// Records the result of a match and routes both opponents
// to their next matches.
//
// The match is completed with the scores, the loser gets one
// more loss and the winner and loser move along the routing
// edges into the first open slot of their next match. Filled
// slots are never overwritten.
//
// The input bracket is returned unchanged when the match ID
// is unknown or the match is already completed. Use
// ValidateResult beforehand to get an error instead.
func (e *Engine) Advance(
	b *Bracket,
	matchID, winnerID, loserID string,
	score1, score2 int,
) *Bracket {
	source, ok := b.Match(matchID)
	if !ok || source.IsCompleted() {
		return b
	}

	a := newArena(b)

	match := a.match(matchID)
	match.Score1 = score1
	match.Score2 = score2
	match.Winner = winnerID
	match.Loser = loserID
	match.Status = Completed

	loser := a.team(loserID)
	if loser != nil {
		loser.Losses += 1
	}

	switch match.ID {
	case GrandFinalID:
		a.decideGrandFinal(match, loser)
	case ResetMatchID:
	default:
		a.route(match, loser)
	}

	next := a.bracket()

	e.Events.MatchCompleted(*match)
	if loser != nil && loser.IsEliminated() {
		e.Events.CompetitorEliminated(*loser)
	}
	if champion, ok := next.Champion(); ok {
		e.Events.TournamentResolved(champion)
	}

	return next
}

// Moves a match with two opponents from pending to
// in progress.
func (e *Engine) Start(b *Bracket, matchID string) (*Bracket, error) {
	match, ok := b.Match(matchID)
	switch {
	case !ok:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMatch, matchID)
	case match.IsCompleted():
		return nil, fmt.Errorf("%w: %v", ErrMatchCompleted, matchID)
	case match.Status == InProgress:
		return nil, fmt.Errorf("%w: %v", ErrMatchStarted, matchID)
	case !match.IsReady():
		return nil, fmt.Errorf("%w: %v", ErrMatchNotReady, matchID)
	}

	a := newArena(b)
	a.match(matchID).Status = InProgress

	return a.bracket(), nil
}

// Checks that a result can be recorded for the match.
//
// Advance silently ignores results that fail this check or
// are routed into full matches. Callers that need feedback
// validate first.
func ValidateResult(b *Bracket, matchID, winnerID, loserID string) error {
	match, ok := b.Match(matchID)
	switch {
	case !ok:
		return fmt.Errorf("%w: %v", ErrUnknownMatch, matchID)
	case match.IsCompleted():
		return fmt.Errorf("%w: %v", ErrMatchCompleted, matchID)
	case !match.IsReady():
		return fmt.Errorf("%w: %v", ErrMatchNotReady, matchID)
	case winnerID == loserID:
		return fmt.Errorf("%w: winner and loser are both %q", ErrNotOccupant, winnerID)
	case !match.ContainsTeam(winnerID):
		return fmt.Errorf("%w: winner %q in %v", ErrNotOccupant, winnerID, matchID)
	case !match.ContainsTeam(loserID):
		return fmt.Errorf("%w: loser %q in %v", ErrNotOccupant, loserID, matchID)
	}
	return nil
}

// The arena holds a private copy of the bracket's teams and
// matches. Routing looks up the destination matches by their
// ID and writes into the copy only.
type arena struct {
	teams   []Team
	matches []Match

	teamIndex  map[string]int
	matchIndex map[string]int
}

func newArena(b *Bracket) *arena {
	a := &arena{
		teams:      slices.Clone(b.Teams),
		matches:    slices.Clone(b.Matches),
		teamIndex:  make(map[string]int, len(b.Teams)),
		matchIndex: make(map[string]int, len(b.Matches)),
	}
	for i, t := range a.teams {
		a.teamIndex[t.ID] = i
	}
	for i, m := range a.matches {
		a.matchIndex[m.ID] = i
	}
	return a
}

func (a *arena) match(id string) *Match {
	i, ok := a.matchIndex[id]
	if !ok {
		return nil
	}
	return &a.matches[i]
}

func (a *arena) team(id string) *Team {
	i, ok := a.teamIndex[id]
	if !ok {
		return nil
	}
	return &a.teams[i]
}

func (a *arena) bracket() *Bracket {
	b := Reconstruct(a.matches)
	b.Teams = a.teams
	return b
}

// Moves the winner and the loser of the completed match
// along its routing edges
func (a *arena) route(match *Match, loser *Team) {
	route, ok := routes[match.ID]
	if !ok {
		route = Route{Winner: match.FeedsInto, Loser: match.LoserFeedsInto}
	}

	if next := a.match(route.Winner); next != nil {
		// The segment finals promote into a fixed grand final slot
		next.fillSlot(match.Winner, route.WinnerSlot)
	}

	if loser != nil && loser.IsEliminated() {
		return
	}
	if next := a.match(route.Loser); next != nil {
		next.fill(match.Loser)
	}
}

// Decides whether the grand final result calls for the
// reset match.
//
// There are two triggers that are both kept:
//   - The team in slot 2 (the losers segment champion) won.
//     The reset match gets the grand final pairing again.
//   - Otherwise the reset match is played when the loser has
//     exactly one loss after this match.
//
// When neither applies the grand final was the last match.
func (a *arena) decideGrandFinal(final *Match, loser *Team) {
	reset := a.match(ResetMatchID)
	if reset == nil {
		return
	}

	if final.Winner == final.Slot2 {
		populateReset(reset, final.Slot1, final.Slot2)
		return
	}

	if loser != nil && loser.Losses == 1 {
		populateReset(reset, final.Winner, final.Loser)
	}
}

func populateReset(reset *Match, slot1, slot2 string) {
	reset.Slot1 = slot1
	reset.Slot2 = slot2
	reset.Score1 = 0
	reset.Score2 = 0
	reset.Winner = ""
	reset.Loser = ""
	reset.Status = Pending
}
