package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownMatch   = errors.New("unknown match")
	ErrMatchCompleted = errors.New("match already completed")
	ErrMatchStarted   = errors.New("match already started")
	ErrMatchNotReady  = errors.New("match does not have two opponents yet")
	ErrNotOccupant    = errors.New("team is not an opponent in the match")
)

// The part of the bracket that a match belongs to
type Segment string

const (
	Winners Segment = "winners"
	Losers  Segment = "losers"
	Finals  Segment = "finals"
)

// The lifecycle of a match only moves forward:
// pending -> in_progress -> completed
type Status string

const (
	Pending    Status = "pending"
	InProgress Status = "in_progress"
	Completed  Status = "completed"
)

// Layout coordinates of a match. Only used for
// presentation, the routing does not depend on it.
type Position struct {
	Round int `json:"round"`
	Index int `json:"index"`
}

// A match with two slots for the opponents.
//
// The slots hold team IDs and are empty until a team
// is routed into them. The routing edges name the
// matches that the winner and the loser go to next.
type Match struct {
	ID      string  `json:"id"`
	Round   int     `json:"round"`
	Segment Segment `json:"segment"`

	// Team ID of the first opponent or "" when open
	Slot1 string `json:"slot1,omitempty"`
	// Team ID of the second opponent or "" when open
	Slot2 string `json:"slot2,omitempty"`

	Score1 int `json:"score1"`
	Score2 int `json:"score2"`

	Winner string `json:"winner,omitempty"`
	Loser  string `json:"loser,omitempty"`

	Status Status `json:"status"`

	// The match that the winner advances to
	FeedsInto string `json:"feedsInto,omitempty"`
	// The match that the loser drops into
	LoserFeedsInto string `json:"loserFeedsInto,omitempty"`

	Position Position `json:"position"`
}

// Returns true when both opponents are known
func (m *Match) IsReady() bool {
	return m.Slot1 != "" && m.Slot2 != ""
}

func (m *Match) IsCompleted() bool {
	return m.Status == Completed
}

// A match without outgoing routing edges ends the path
// of both its opponents
func (m *Match) IsTerminal() bool {
	return m.FeedsInto == "" && m.LoserFeedsInto == ""
}

func (m *Match) ContainsTeam(teamID string) bool {
	return teamID != "" && (m.Slot1 == teamID || m.Slot2 == teamID)
}

func (m *Match) String() string {
	var sb strings.Builder
	sb.WriteString(m.ID)
	sb.WriteString(": ")
	if m.Slot1 == "" {
		sb.WriteString("[Empty]")
	} else {
		sb.WriteString(m.Slot1)
	}
	sb.WriteString(" vs. ")
	if m.Slot2 == "" {
		sb.WriteString("[Empty]")
	} else {
		sb.WriteString(m.Slot2)
	}

	if m.Status == Completed {
		sb.WriteString(fmt.Sprintf("\t%v - %v", m.Score1, m.Score2))
	}

	return sb.String()
}

// A Round is a list of matches of one segment that
// can be played in parallel.
type Round struct {
	Number  int
	Matches []Match
}
