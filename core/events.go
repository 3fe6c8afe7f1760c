package core

// An EventSink observes the progress of a bracket.
//
// The engine calls the sink synchronously while it
// advances a match. Implementations must not modify
// the passed values.
type EventSink interface {
	// A match result was recorded
	MatchCompleted(match Match)

	// A team reached its second loss
	CompetitorEliminated(team Team)

	// The bracket has a champion
	TournamentResolved(champion Team)
}

// NopEvents ignores all events
type NopEvents struct{}

func (NopEvents) MatchCompleted(Match)      {}
func (NopEvents) CompetitorEliminated(Team) {}
func (NopEvents) TournamentResolved(Team)   {}

var _ EventSink = NopEvents{}

// Fans out the events to multiple sinks in order
type MultiEvents []EventSink

func (s MultiEvents) MatchCompleted(match Match) {
	for _, sink := range s {
		sink.MatchCompleted(match)
	}
}

func (s MultiEvents) CompetitorEliminated(team Team) {
	for _, sink := range s {
		sink.CompetitorEliminated(team)
	}
}

func (s MultiEvents) TournamentResolved(champion Team) {
	for _, sink := range s {
		sink.TournamentResolved(champion)
	}
}
