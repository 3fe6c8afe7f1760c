package core

// The slot numbers of a match. AnySlot means the first
// open slot is taken.
const (
	AnySlot    = 0
	FirstSlot  = 1
	SecondSlot = 2
)

// Puts the team into the first open slot (slot 1 before
// slot 2). Returns false when both slots are taken.
//
// A filled slot is never overwritten, so routing the same
// team twice or misrouting a third team into a full match
// is silently dropped.
func (m *Match) fill(teamID string) bool {
	switch {
	case m.Slot1 == "":
		m.Slot1 = teamID
	case m.Slot2 == "":
		m.Slot2 = teamID
	default:
		return false
	}
	return true
}

// Puts the team into the given slot if it is open.
// AnySlot behaves like fill.
func (m *Match) fillSlot(teamID string, slot int) bool {
	switch slot {
	case FirstSlot:
		if m.Slot1 != "" {
			return false
		}
		m.Slot1 = teamID
		return true
	case SecondSlot:
		if m.Slot2 != "" {
			return false
		}
		m.Slot2 = teamID
		return true
	}
	return m.fill(teamID)
}

// Returns the slot number that the team occupies or
// AnySlot if the team is not in the match.
func (m *Match) SlotOf(teamID string) int {
	switch {
	case teamID == "":
		return AnySlot
	case m.Slot1 == teamID:
		return FirstSlot
	case m.Slot2 == teamID:
		return SecondSlot
	}
	return AnySlot
}

// Returns the opponent of the given team or "" when the
// team is not in the match
func (m *Match) Opponent(teamID string) string {
	switch m.SlotOf(teamID) {
	case FirstSlot:
		return m.Slot2
	case SecondSlot:
		return m.Slot1
	}
	return ""
}
