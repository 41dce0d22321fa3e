// Package journal keeps an append-only SQLite record of completed moves.
// It is an audit trail; nothing reads it back to undo a sort.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/starter-coder/File-Sorter/internal"
)

// Journal wraps the database connection.
type Journal struct {
	conn *sql.DB
}

// Open opens or creates the journal at dbPath.
func Open(dbPath string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), internal.DirPerm); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	conn.SetMaxOpenConns(1)

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS moves (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		source TEXT NOT NULL,
		destination TEXT NOT NULL,
		category TEXT NOT NULL,
		moved_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_moves_run ON moves(run_id);
	`

	if _, err = conn.Exec(createTableSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create journal table: %w", err)
	}

	return &Journal{conn: conn}, nil
}

// NewRunID returns an identifier grouping the moves of one sort.
func NewRunID() string {
	return uuid.NewString()
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.conn.Close()
}

// Record stores records in a single transaction.
func (j *Journal) Record(records []internal.MoveRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := j.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin journal transaction: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO moves (run_id, source, destination, category, moved_at) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare journal insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		movedAt := r.MovedAt
		if movedAt.IsZero() {
			movedAt = time.Now()
		}
		if _, err := stmt.Exec(r.RunID, r.Source, r.Destination, r.Category, movedAt.UnixNano()); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert journal record for %s: %w", r.Source, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit journal: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (j *Journal) Recent(limit int) ([]internal.MoveRecord, error) {
	rows, err := j.conn.Query(
		"SELECT run_id, source, destination, category, moved_at FROM moves ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var records []internal.MoveRecord
	for rows.Next() {
		var r internal.MoveRecord
		var movedAt int64
		if err := rows.Scan(&r.RunID, &r.Source, &r.Destination, &r.Category, &movedAt); err != nil {
			return nil, fmt.Errorf("scan journal row: %w", err)
		}
		r.MovedAt = time.Unix(0, movedAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal rows: %w", err)
	}
	return records, nil
}

// CountRun returns how many moves runID recorded.
func (j *Journal) CountRun(runID string) (int, error) {
	var count int
	err := j.conn.QueryRow("SELECT COUNT(*) FROM moves WHERE run_id = ?", runID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count journal run: %w", err)
	}
	return count, nil
}
