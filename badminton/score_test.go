package badminton

import (
	"testing"

	"github.com/ezBadminton/gobracket/core"
)

func TestScoreSettings(t *testing.T) {
	_, err := NewScoreSettings(0, 30, true)
	if err != ErrPointsZero {
		t.Fatal("zero points did not error")
	}

	_, err = NewScoreSettings(21, 20, true)
	if err != ErrMaxPoints {
		t.Fatal("max points less than winning points did not error")
	}

	_, err = NewScoreSettings(21, 21, true)
	if err != nil {
		t.Fatal("max points equal to winning points did error")
	}

	settings, err := NewScoreSettings(21, 0, false)
	if err != nil || settings.MaxPoints != 21 {
		t.Fatal("max points not overridden when two point winning margin is false")
	}

	settings, err = NewScoreSettings(21, 30, true)
	if err != nil || settings != DefaultScoreSettings() {
		t.Fatal("standard badminton score setting did error")
	}
}

func TestScoreErrors(t *testing.T) {
	settings := DefaultScoreSettings()

	cases := []struct {
		a, b int
		err  error
	}{
		{21, -1, ErrNegativePoints},
		{21, 21, ErrUndetermined},
		{20, 17, ErrTooFewPoints},
		{31, 29, ErrTooManyPoints},
		{21, 20, ErrInvalidMargin},
		{29, 28, ErrInvalidMargin},
		{24, 21, ErrInvalidMargin},
		{30, 27, ErrInvalidMargin},
	}

	for _, c := range cases {
		_, err := NewGameScore(c.a, c.b, settings)
		if err != c.err {
			t.Fatalf("%v - %v: expected %v, got %v", c.a, c.b, c.err, err)
		}
	}
}

func TestValidScores(t *testing.T) {
	settings := DefaultScoreSettings()

	score, err := NewGameScore(21, 15, settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.Winner() != core.FirstSlot {
		t.Fatal("score returned the wrong winner")
	}

	for _, points := range [][2]int{{19, 21}, {22, 24}, {29, 30}, {28, 30}, {0, 21}} {
		score, err = NewGameScore(points[0], points[1], settings)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", points, err)
		}
		if score.Winner() != core.SecondSlot {
			t.Fatalf("%v: score returned the wrong winner", points)
		}
	}

	settings, _ = NewScoreSettings(11, 11, false)
	score, err = NewGameScore(11, 10, settings)
	if err != nil || score.Winner() != core.FirstSlot {
		t.Fatal("a one point margin was not accepted without the two point rule")
	}
	if score.Invert().Winner() != core.SecondSlot {
		t.Fatal("the inverted score has the same winner")
	}
}

func TestScoreResult(t *testing.T) {
	match := &core.Match{ID: "W-R1-M1", Slot1: "a", Slot2: "b"}

	winner, loser := GameScore{21, 15}.Result(match)
	if winner != "a" || loser != "b" {
		t.Fatal("the first slot did not win")
	}

	winner, loser = GameScore{15, 21}.Result(match)
	if winner != "b" || loser != "a" {
		t.Fatal("the second slot did not win")
	}
}

func TestMaxScore(t *testing.T) {
	score := MaxScore(DefaultScoreSettings())
	if score != (GameScore{21, 0}) {
		t.Fatal("max score is incorrect")
	}
}
