package badminton

import (
	"errors"

	"github.com/ezBadminton/gobracket/core"
)

var (
	ErrPointsZero = errors.New("winning points are zero or less")
	ErrMaxPoints  = errors.New("max points are less than winning points")

	ErrNegativePoints = errors.New("negative points")
	ErrUndetermined   = errors.New("the winner is undeterminable from the score")
	ErrTooManyPoints  = errors.New("points exceed the max points setting")
	ErrTooFewPoints   = errors.New("winner points are less than the winning point setting")
	ErrInvalidMargin  = errors.New("the winning point margin is invalid")
)

// The rules of a rally point game
type ScoreSettings struct {
	WinningPoints  int
	MaxPoints      int
	TwoPointMargin bool
}

func NewScoreSettings(winningPoints, maxPoints int, twoPointMargin bool) (ScoreSettings, error) {
	if !twoPointMargin {
		maxPoints = winningPoints
	}

	settings := ScoreSettings{winningPoints, maxPoints, twoPointMargin}

	if winningPoints <= 0 {
		return settings, ErrPointsZero
	}
	if maxPoints < winningPoints {
		return settings, ErrMaxPoints
	}

	return settings, nil
}

// Standard badminton: 21 points, two point margin, capped at 30
func DefaultScoreSettings() ScoreSettings {
	return ScoreSettings{WinningPoints: 21, MaxPoints: 30, TwoPointMargin: true}
}

// The points of the two slots of a match in a single game
type GameScore struct {
	Points1, Points2 int
}

// Returns core.FirstSlot or core.SecondSlot
func (s GameScore) Winner() int {
	if s.Points1 > s.Points2 {
		return core.FirstSlot
	}
	return core.SecondSlot
}

// Maps the score onto the opponents of the match
func (s GameScore) Result(m *core.Match) (winnerID, loserID string) {
	if s.Winner() == core.FirstSlot {
		return m.Slot1, m.Slot2
	}
	return m.Slot2, m.Slot1
}

func (s GameScore) Invert() GameScore {
	return GameScore{Points1: s.Points2, Points2: s.Points1}
}

// Validates the points of a game against the settings
func NewGameScore(points1, points2 int, settings ScoreSettings) (GameScore, error) {
	winningMargin := 1
	if settings.TwoPointMargin {
		winningMargin = 2
	}

	w := max(points1, points2)
	l := min(points1, points2)

	switch {
	case l < 0:
		return GameScore{}, ErrNegativePoints
	case w == l:
		return GameScore{}, ErrUndetermined
	case w < settings.WinningPoints:
		return GameScore{}, ErrTooFewPoints
	case w > settings.MaxPoints:
		return GameScore{}, ErrTooManyPoints
	case w == settings.WinningPoints && w-l < winningMargin:
		fallthrough
	case w < settings.MaxPoints && w > settings.WinningPoints && w-l != winningMargin:
		fallthrough
	case w == settings.MaxPoints && w > settings.WinningPoints && w-l > winningMargin:
		return GameScore{}, ErrInvalidMargin
	}

	return GameScore{points1, points2}, nil
}

// The score of a game that is won without conceding a point
func MaxScore(settings ScoreSettings) GameScore {
	return GameScore{Points1: settings.WinningPoints}
}
