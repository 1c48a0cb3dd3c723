package setlog

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// StateDB tracks which set-log entries were already sent, keyed by entry
// fingerprint, so a re-run skips them.
type StateDB struct {
	db *sql.DB
}

// OpenStateDB opens (or creates) the SQLite state database at dir/state.db.
func OpenStateDB(dir string) (*StateDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "state.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS sent_sets (
		fingerprint   TEXT PRIMARY KEY,
		source_set_id TEXT NOT NULL,
		sent_at       TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating state table: %w", err)
	}

	return &StateDB{db: db}, nil
}

// IsSent reports whether an entry was already sent, returning the source set
// ID it was sent under.
func (s *StateDB) IsSent(fingerprint string) (string, bool, error) {
	var id string
	err := s.db.QueryRow(
		`SELECT source_set_id FROM sent_sets WHERE fingerprint = ?`,
		fingerprint,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// MarkSent records that an entry was successfully sent.
func (s *StateDB) MarkSent(fingerprint, sourceSetID string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO sent_sets (fingerprint, source_set_id) VALUES (?, ?)`,
		fingerprint, sourceSetID,
	)
	return err
}

// Close closes the state database.
func (s *StateDB) Close() error {
	return s.db.Close()
}

func hashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
