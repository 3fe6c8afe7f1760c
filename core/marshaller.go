package core

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnsupportedVersion = errors.New("unsupported bracket format version")

// The version of the persisted bracket format
const formatVersion = 1

// Only the teams and the flat match list are written. The
// round view is derived again when the bracket is read.
func marshalBracket(bracket *Bracket) map[string]any {
	teams := bracket.Teams
	if teams == nil {
		teams = []Team{}
	}
	matches := bracket.Matches
	if matches == nil {
		matches = []Match{}
	}

	result := map[string]any{
		"version": formatVersion,
		"teams":   teams,
		"matches": matches,
	}

	return result
}

type bracketDocument struct {
	Version int     `json:"version"`
	Teams   []Team  `json:"teams"`
	Matches []Match `json:"matches"`
}

func (b *Bracket) MarshalJSON() ([]byte, error) {
	anymap := marshalBracket(b)
	return json.Marshal(anymap)
}

func (b *Bracket) UnmarshalJSON(data []byte) error {
	var doc bracketDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Version != formatVersion {
		return fmt.Errorf("%w: %v", ErrUnsupportedVersion, doc.Version)
	}

	reconstructed := Reconstruct(doc.Matches)
	reconstructed.Teams = doc.Teams
	*b = *reconstructed

	return nil
}
