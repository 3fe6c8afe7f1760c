package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvents struct {
	completed  []string
	eliminated []string
	champions  []string
}

func (r *recordedEvents) MatchCompleted(m Match)      { r.completed = append(r.completed, m.ID) }
func (r *recordedEvents) CompetitorEliminated(t Team) { r.eliminated = append(r.eliminated, t.ID) }
func (r *recordedEvents) TournamentResolved(t Team)   { r.champions = append(r.champions, t.ID) }

func newBracket(t *testing.T) *Bracket {
	t.Helper()
	bracket, err := Generate(TeamSlice(NumTeams))
	require.NoError(t, err)
	return bracket
}

func getMatch(t *testing.T, b *Bracket, id string) Match {
	t.Helper()
	m, ok := b.Match(id)
	require.True(t, ok, "match %v is missing", id)
	return *m
}

func getTeam(t *testing.T, b *Bracket, id string) Team {
	t.Helper()
	team, ok := b.Team(id)
	require.True(t, ok, "team %v is missing", id)
	return *team
}

// Plays the match with the team in the given slot winning 21-15
func play(e *Engine, b *Bracket, id string, winnerSlot int) *Bracket {
	m, _ := b.Match(id)
	if winnerSlot == FirstSlot {
		return e.Advance(b, id, m.Slot1, m.Slot2, 21, 15)
	}
	return e.Advance(b, id, m.Slot2, m.Slot1, 15, 21)
}

// Plays every match in list order with the first slot winning
// until the grand final is the only playable match
func playToGrandFinal(e *Engine, b *Bracket) *Bracket {
	for {
		playable := b.PlayableMatches()
		if len(playable) == 0 || playable[0].ID == GrandFinalID {
			return b
		}
		b = play(e, b, playable[0].ID, FirstSlot)
	}
}

func TestGenerateMatchCounts(t *testing.T) {
	bracket := newBracket(t)

	counts := make(map[Segment]int)
	for _, m := range bracket.Matches {
		counts[m.Segment] += 1
	}

	assert.Len(t, bracket.Matches, 19)
	assert.Equal(t, 9, counts[Winners])
	assert.Equal(t, 8, counts[Losers])
	assert.Equal(t, 2, counts[Finals])

	assert.Len(t, bracket.WinnersRounds, 4)
	assert.Len(t, bracket.LosersRounds, 5)
	assert.Len(t, bracket.FinalsRounds, 2)

	sizes := func(rounds []Round) []int {
		s := make([]int, 0, len(rounds))
		for _, r := range rounds {
			s = append(s, len(r.Matches))
		}
		return s
	}
	assert.Equal(t, []int{2, 4, 2, 1}, sizes(bracket.WinnersRounds))
	assert.Equal(t, []int{2, 2, 2, 1, 1}, sizes(bracket.LosersRounds))
	assert.Equal(t, []int{1, 1}, sizes(bracket.FinalsRounds))
}

func TestGenerateInvalidTeamCount(t *testing.T) {
	for _, n := range []int{0, 1, 9, 11, 16} {
		bracket, err := Generate(TeamSlice(n))
		assert.Nil(t, bracket)
		assert.ErrorIs(t, err, ErrInvalidInput, "%v teams", n)
	}
}

func TestGenerateDuplicateTeams(t *testing.T) {
	teams := TeamSlice(NumTeams)
	teams[9].ID = teams[0].ID

	_, err := Generate(teams)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerateSeeds(t *testing.T) {
	teams := TeamSlice(NumTeams)
	teams[2].Losses = 2
	teams[4].ID = ""

	bracket, err := Generate(teams)
	require.NoError(t, err)

	for i, team := range bracket.Teams {
		assert.Equal(t, i+1, team.Seed)
		assert.Equal(t, 0, team.Losses)
		assert.NotEmpty(t, team.ID)
	}
	assert.Equal(t, "t1", bracket.Teams[0].ID)
	assert.Equal(t, 2, teams[2].Losses, "the input teams were modified")

	placements := map[string][2]string{
		"W-R1-M1": {"t7", "t10"},
		"W-R1-M2": {"t8", "t9"},
		"W-R2-M1": {"t1", "t2"},
		"W-R2-M2": {"t3", ""},
		"W-R2-M3": {"t4", ""},
		"W-R2-M4": {bracket.Teams[4].ID, "t6"},
	}
	for id, slots := range placements {
		m := getMatch(t, bracket, id)
		assert.Equal(t, slots[0], m.Slot1, id)
		assert.Equal(t, slots[1], m.Slot2, id)
	}

	for _, m := range bracket.Matches {
		if _, placed := placements[m.ID]; placed {
			continue
		}
		assert.False(t, m.IsReady() || m.Slot1 != "" || m.Slot2 != "", "%v has teams", m.ID)
	}
}

func TestGenerateRoutingEdges(t *testing.T) {
	bracket := newBracket(t)

	expected := map[string][2]string{
		"W-R1-M1":    {"W-R2-M2", "L-R1-M1"},
		"W-R1-M2":    {"W-R2-M3", "L-R1-M2"},
		"W-R2-M1":    {"W-R3-M1", "L-R2-M1"},
		"W-R2-M2":    {"W-R3-M1", "L-R1-M1"},
		"W-R2-M3":    {"W-R3-M2", "L-R1-M2"},
		"W-R2-M4":    {"W-R3-M2", "L-R2-M2"},
		"W-R3-M1":    {"W-R4-M1", "L-R3-M1"},
		"W-R3-M2":    {"W-R4-M1", "L-R3-M2"},
		"W-R4-M1":    {GrandFinalID, "L-R5-M1"},
		"L-R1-M1":    {"L-R2-M1", ""},
		"L-R1-M2":    {"L-R2-M2", ""},
		"L-R2-M1":    {"L-R3-M1", ""},
		"L-R2-M2":    {"L-R3-M2", ""},
		"L-R3-M1":    {"L-R4-M1", ""},
		"L-R3-M2":    {"L-R4-M1", ""},
		"L-R4-M1":    {"L-R5-M1", ""},
		"L-R5-M1":    {GrandFinalID, ""},
		GrandFinalID: {"", ""},
		ResetMatchID: {"", ""},
	}

	require.Len(t, bracket.Matches, len(expected))
	for _, m := range bracket.Matches {
		edges, ok := expected[m.ID]
		require.True(t, ok, "unexpected match %v", m.ID)
		assert.Equal(t, edges[0], m.FeedsInto, "winner edge of %v", m.ID)
		assert.Equal(t, edges[1], m.LoserFeedsInto, "loser edge of %v", m.ID)
		assert.Equal(t, Pending, m.Status)

		switch m.Segment {
		case Winners:
			assert.NotEmpty(t, m.LoserFeedsInto, m.ID)
		case Finals:
			assert.True(t, m.IsTerminal(), m.ID)
		}
	}
}

func TestAdvanceFirstRound(t *testing.T) {
	bracket := newBracket(t)

	next := Advance(bracket, "W-R1-M1", "t7", "t10", 21, 15)

	m := getMatch(t, next, "W-R1-M1")
	assert.Equal(t, Completed, m.Status)
	assert.Equal(t, 21, m.Score1)
	assert.Equal(t, 15, m.Score2)
	assert.Equal(t, "t7", m.Winner)
	assert.Equal(t, "t10", m.Loser)

	// Seed 3 already holds the first slot
	winnerMatch := getMatch(t, next, "W-R2-M2")
	assert.Equal(t, "t3", winnerMatch.Slot1)
	assert.Equal(t, "t7", winnerMatch.Slot2)

	loserMatch := getMatch(t, next, "L-R1-M1")
	assert.Equal(t, "t10", loserMatch.Slot1)
	assert.Equal(t, "", loserMatch.Slot2)
	assert.Equal(t, 1, getTeam(t, next, "t10").Losses)
	assert.Equal(t, 0, getTeam(t, next, "t7").Losses)

	// The input snapshot is unchanged
	assert.Equal(t, Pending, getMatch(t, bracket, "W-R1-M1").Status)
	assert.Equal(t, "", getMatch(t, bracket, "W-R2-M2").Slot2)
	assert.Equal(t, 0, getTeam(t, bracket, "t10").Losses)

	// The round view follows the flat list
	assert.Equal(t, Completed, next.WinnersRounds[0].Matches[0].Status)
}

func TestAdvanceUnknownMatch(t *testing.T) {
	bracket := newBracket(t)

	next := Advance(bracket, "W-R9-M1", "t7", "t10", 21, 15)
	assert.Same(t, bracket, next)
}

func TestAdvanceCompletedMatch(t *testing.T) {
	bracket := newBracket(t)

	once := Advance(bracket, "W-R1-M1", "t7", "t10", 21, 15)
	twice := Advance(once, "W-R1-M1", "t7", "t10", 21, 15)

	assert.Same(t, once, twice)
	assert.Equal(t, 1, getTeam(t, twice, "t10").Losses)
}

func TestAdvanceIntoFullMatch(t *testing.T) {
	bracket := newBracket(t)

	// W-R2-M1 feeds t2 into L-R2-M1 which is then filled up by hand
	target, _ := bracket.Match("L-R2-M1")
	target.Slot1, target.Slot2 = "t9", "t8"

	next := Advance(bracket, "W-R2-M1", "t1", "t2", 21, 19)

	full := getMatch(t, next, "L-R2-M1")
	assert.Equal(t, "t9", full.Slot1)
	assert.Equal(t, "t8", full.Slot2)
	assert.Equal(t, "t1", getMatch(t, next, "W-R3-M1").Slot1)
}

func TestFullPlayOutFirstSlotWins(t *testing.T) {
	events := &recordedEvents{}
	e := NewEngine(events)
	bracket := newBracket(t)

	for {
		playable := bracket.PlayableMatches()
		if len(playable) == 0 {
			break
		}
		bracket = play(e, bracket, playable[0].ID, FirstSlot)
	}

	completedTerminals := make([]Match, 0, 1)
	for _, m := range bracket.Matches {
		if m.IsCompleted() && m.FeedsInto == "" {
			completedTerminals = append(completedTerminals, m)
		}
	}
	require.Len(t, completedTerminals, 1)
	assert.Equal(t, GrandFinalID, completedTerminals[0].ID)

	survivors := make([]Team, 0, 1)
	for _, team := range bracket.Teams {
		if !team.IsEliminated() {
			survivors = append(survivors, team)
		}
	}
	require.Len(t, survivors, 1)
	assert.Equal(t, "t1", survivors[0].ID)
	assert.Equal(t, completedTerminals[0].Winner, survivors[0].ID)

	reset := getMatch(t, bracket, ResetMatchID)
	assert.Equal(t, Pending, reset.Status)
	assert.Empty(t, reset.Slot1)
	assert.Empty(t, reset.Slot2)

	champion, ok := bracket.Champion()
	assert.True(t, ok)
	assert.Equal(t, "t1", champion.ID)

	assert.Len(t, events.completed, 18)
	assert.Len(t, events.eliminated, 9)
	assert.Equal(t, []string{"t1"}, events.champions)
	assert.Len(t, bracket.Eliminated(), 9)
}

func TestGrandFinalFinalists(t *testing.T) {
	bracket := playToGrandFinal(defaultEngine, newBracket(t))

	final := getMatch(t, bracket, GrandFinalID)
	assert.Equal(t, "t1", final.Slot1, "winners segment champion")
	assert.Equal(t, "t4", final.Slot2, "losers segment champion")
	assert.Equal(t, 0, getTeam(t, bracket, "t1").Losses)
	assert.Equal(t, 1, getTeam(t, bracket, "t4").Losses)
	assert.False(t, bracket.IsResolved())
}

func TestGrandFinalLosersChampionWins(t *testing.T) {
	events := &recordedEvents{}
	e := NewEngine(events)
	bracket := playToGrandFinal(e, newBracket(t))

	bracket = play(e, bracket, GrandFinalID, SecondSlot)

	reset := getMatch(t, bracket, ResetMatchID)
	assert.Equal(t, "t1", reset.Slot1)
	assert.Equal(t, "t4", reset.Slot2)
	assert.Equal(t, Pending, reset.Status)
	assert.Equal(t, 1, getTeam(t, bracket, "t1").Losses)
	assert.False(t, bracket.IsResolved())
	assert.Empty(t, events.champions)

	bracket = play(e, bracket, ResetMatchID, SecondSlot)

	champion, ok := bracket.Champion()
	require.True(t, ok)
	assert.Equal(t, "t4", champion.ID)
	assert.Equal(t, 2, getTeam(t, bracket, "t1").Losses)
	assert.Equal(t, []string{"t4"}, events.champions)
	assert.Empty(t, bracket.PlayableMatches())
}

func TestGrandFinalWinnersChampionWins(t *testing.T) {
	bracket := playToGrandFinal(defaultEngine, newBracket(t))

	bracket = play(defaultEngine, bracket, GrandFinalID, FirstSlot)

	assert.Equal(t, 2, getTeam(t, bracket, "t4").Losses)

	reset := getMatch(t, bracket, ResetMatchID)
	assert.Equal(t, Pending, reset.Status)
	assert.Empty(t, reset.Slot1)
	assert.Empty(t, reset.Slot2)

	champion, ok := bracket.Champion()
	require.True(t, ok)
	assert.Equal(t, "t1", champion.ID)
}

// The second reset trigger looks at the loss count of the loser
// instead of the slot of the winner
func TestGrandFinalResetByLossCount(t *testing.T) {
	bracket := playToGrandFinal(defaultEngine, newBracket(t))

	finalist, _ := bracket.Team("t4")
	finalist.Losses = 0

	bracket = play(defaultEngine, bracket, GrandFinalID, FirstSlot)

	assert.Equal(t, 1, getTeam(t, bracket, "t4").Losses)

	reset := getMatch(t, bracket, ResetMatchID)
	assert.Equal(t, "t1", reset.Slot1)
	assert.Equal(t, "t4", reset.Slot2)
	assert.Equal(t, Pending, reset.Status)
	assert.False(t, bracket.IsResolved())
}

func TestStartMatch(t *testing.T) {
	bracket := newBracket(t)

	started, err := Start(bracket, "W-R1-M1")
	require.NoError(t, err)
	assert.Equal(t, InProgress, getMatch(t, started, "W-R1-M1").Status)
	assert.Equal(t, Pending, getMatch(t, bracket, "W-R1-M1").Status)

	_, err = Start(started, "W-R1-M1")
	assert.ErrorIs(t, err, ErrMatchStarted)

	_, err = Start(started, "W-R2-M2")
	assert.ErrorIs(t, err, ErrMatchNotReady)

	_, err = Start(started, "nope")
	assert.ErrorIs(t, err, ErrUnknownMatch)

	completed := Advance(started, "W-R1-M1", "t7", "t10", 21, 15)
	assert.Equal(t, Completed, getMatch(t, completed, "W-R1-M1").Status)

	_, err = Start(completed, "W-R1-M1")
	assert.ErrorIs(t, err, ErrMatchCompleted)
}

func TestValidateResult(t *testing.T) {
	bracket := newBracket(t)

	cases := []struct {
		match, winner, loser string
		err                  error
	}{
		{"W-R1-M1", "t7", "t10", nil},
		{"W-R1-M1", "t10", "t7", nil},
		{"X", "t7", "t10", ErrUnknownMatch},
		{"W-R2-M2", "t3", "t7", ErrMatchNotReady},
		{"W-R1-M1", "t1", "t10", ErrNotOccupant},
		{"W-R1-M1", "t7", "t7", ErrNotOccupant},
	}

	for _, c := range cases {
		err := ValidateResult(bracket, c.match, c.winner, c.loser)
		if c.err == nil {
			assert.NoError(t, err)
		} else {
			assert.True(t, errors.Is(err, c.err), "%v: got %v", c.match, err)
		}
	}

	completed := Advance(bracket, "W-R1-M1", "t7", "t10", 21, 15)
	err := ValidateResult(completed, "W-R1-M1", "t7", "t10")
	assert.ErrorIs(t, err, ErrMatchCompleted)
}
