package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ezBadminton/gobracket/core"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS brackets (
	tournament_id TEXT PRIMARY KEY,
	bracket       TEXT NOT NULL,
	updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SQLiteStore keeps one row per tournament with the bracket
// encoded as JSON.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

var _ Store = (*SQLiteStore)(nil)

// Opens or creates the database file at path. The directory
// of the file is created when it does not exist.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Save(ctx context.Context, tournamentID string, bracket *core.Bracket) error {
	data, err := json.Marshal(bracket)
	if err != nil {
		return fmt.Errorf("encode bracket %v: %w", tournamentID, err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO brackets (tournament_id, bracket, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(tournament_id) DO UPDATE SET
			bracket = excluded.bracket,
			updated_at = excluded.updated_at`,
		tournamentID,
		string(data),
	)
	if err != nil {
		return fmt.Errorf("save bracket %v: %w", tournamentID, err)
	}

	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, tournamentID string) (*core.Bracket, error) {
	var data string
	err := s.db.QueryRowContext(
		ctx,
		`SELECT bracket FROM brackets WHERE tournament_id = ?`,
		tournamentID,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, tournamentID)
	}
	if err != nil {
		return nil, fmt.Errorf("load bracket %v: %w", tournamentID, err)
	}

	bracket := &core.Bracket{}
	if err := json.Unmarshal([]byte(data), bracket); err != nil {
		return nil, fmt.Errorf("decode bracket %v: %w", tournamentID, err)
	}

	return bracket, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT tournament_id FROM brackets ORDER BY tournament_id`)
	if err != nil {
		return nil, fmt.Errorf("list brackets: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list brackets: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (s *SQLiteStore) Delete(ctx context.Context, tournamentID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM brackets WHERE tournament_id = ?`, tournamentID)
	if err != nil {
		return fmt.Errorf("delete bracket %v: %w", tournamentID, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete bracket %v: %w", tournamentID, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %v", ErrNotFound, tournamentID)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
