// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/dbpedia-info/pkg/types"
)

// Store is a hints registry persisted in a SQLite database, so hints
// submitted by one CLI invocation are visible to the next.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the registry database at cfg.Path and creates
// the schema if it does not exist.
func NewStore(cfg types.RegistryConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("registry path is empty")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating registry directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS hints (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			submission_id TEXT NOT NULL,
			plugin_id TEXT NOT NULL,
			loc_start INTEGER NOT NULL,
			loc_end INTEGER NOT NULL,
			term TEXT NOT NULL,
			card TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_hints_plugin_loc ON hints(plugin_id, loc_start, loc_end)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RemoveHintsInRegion deletes pluginID's hints lying inside region.
func (s *Store) RemoveHintsInRegion(ctx context.Context, region types.Region, _ string, pluginID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM hints WHERE plugin_id = ? AND loc_start >= ? AND loc_end <= ?`,
		pluginID, region.Start, region.End)
	if err != nil {
		return fmt.Errorf("deleting hints: %w", err)
	}
	return nil
}

// AddHints inserts cards under pluginID in one transaction.
func (s *Store) AddHints(ctx context.Context, submissionID, pluginID string, cards []types.Card) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO hints (submission_id, plugin_id, loc_start, loc_end, term, card) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cards {
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("encoding card %q: %w", c.Info.Term, err)
		}
		if _, err := stmt.ExecContext(ctx, submissionID, pluginID, c.Location[0], c.Location[1], c.Info.Term, string(data)); err != nil {
			return fmt.Errorf("inserting card %q: %w", c.Info.Term, err)
		}
	}
	return tx.Commit()
}

// Hints returns pluginID's entries ordered by location.
func (s *Store) Hints(ctx context.Context, pluginID string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT submission_id, plugin_id, card FROM hints WHERE plugin_id = ? ORDER BY loc_start, loc_end, rowid`,
		pluginID)
	if err != nil {
		return nil, fmt.Errorf("querying hints: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var data string
		if err := rows.Scan(&e.SubmissionID, &e.PluginID, &data); err != nil {
			return nil, fmt.Errorf("scanning hint: %w", err)
		}
		if err := json.Unmarshal([]byte(data), &e.Card); err != nil {
			return nil, fmt.Errorf("decoding card: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
