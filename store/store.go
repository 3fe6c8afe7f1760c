// Package store keeps brackets between sessions.
//
// A store saves the bracket of a tournament as an opaque
// value and hands back an identical bracket on load. It
// does not coordinate writers: the last save wins.
package store

import (
	"context"
	"errors"

	"github.com/ezBadminton/gobracket/core"
)

var ErrNotFound = errors.New("tournament not found")

type Store interface {
	// Saves the bracket under the tournament ID, replacing
	// any earlier bracket of the tournament
	Save(ctx context.Context, tournamentID string, bracket *core.Bracket) error

	// Returns the bracket of the tournament or ErrNotFound
	Load(ctx context.Context, tournamentID string) (*core.Bracket, error)

	// Returns the IDs of all stored tournaments in order
	List(ctx context.Context) ([]string, error)

	Delete(ctx context.Context, tournamentID string) error

	Close() error
}
