package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ezBadminton/gobracket/core"
)

func teamName(bracket *core.Bracket, id string) string {
	if id == "" {
		return "-"
	}
	if t, ok := bracket.Team(id); ok && t.Name != "" {
		return t.Name
	}
	return id
}

func writeMatch(w io.Writer, bracket *core.Bracket, m *core.Match) {
	score := ""
	if m.IsCompleted() {
		score = fmt.Sprintf("%v - %v", m.Score1, m.Score2)
	}
	fmt.Fprintf(
		w,
		"%v\t%v\tvs.\t%v\t%v\t%v\n",
		m.ID,
		teamName(bracket, m.Slot1),
		teamName(bracket, m.Slot2),
		score,
		m.Status,
	)
}

func renderMatch(out io.Writer, bracket *core.Bracket, m *core.Match) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	writeMatch(w, bracket, m)
	if champion, ok := bracket.Champion(); ok {
		fmt.Fprintf(w, "Champion:\t%v\n", teamName(bracket, champion.ID))
	}
	return w.Flush()
}

func renderBracket(out io.Writer, bracket *core.Bracket) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	segments := []struct {
		title  string
		rounds []core.Round
	}{
		{"Winners", bracket.WinnersRounds},
		{"Losers", bracket.LosersRounds},
		{"Finals", bracket.FinalsRounds},
	}

	for _, s := range segments {
		for _, r := range s.rounds {
			fmt.Fprintf(w, "%v round %v\n", s.title, r.Number)
			for _, m := range r.Matches {
				writeMatch(w, bracket, &m)
			}
		}
	}

	if champion, ok := bracket.Champion(); ok {
		fmt.Fprintf(w, "Champion:\t%v\n", teamName(bracket, champion.ID))
	}

	return w.Flush()
}

// Prints one line per rank. Tied teams share the place
// of the best of them.
func renderStandings(out io.Writer, bracket *core.Bracket) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	place := 1
	for _, rank := range core.Standings(bracket) {
		for _, t := range rank {
			fmt.Fprintf(w, "%v.\t%v\t%v losses\n", place, teamName(bracket, t.ID), t.Losses)
		}
		place += len(rank)
	}
	return w.Flush()
}
