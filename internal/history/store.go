package history

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/gzip"
	_ "modernc.org/sqlite"

	"human/internal/errors"
	"human/internal/logging"
	"human/internal/output"
)

// timeLayout is fixed width so created_at sorts correctly as text
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store persists conversion history in a SQLite database.
type Store struct {
	conn   *sql.DB
	logger *logging.Logger
	dbPath string
}

// OpenStore opens or creates the history database at dbPath
func OpenStore(dbPath string, logger *logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, unavailable("failed to create history directory", err)
	}

	dbExists := fileExists(dbPath)

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, unavailable("failed to open history database", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}

	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, unavailable("failed to set pragma", err)
		}
	}

	store := &Store{
		conn:   conn,
		logger: logger,
		dbPath: dbPath,
	}

	if !dbExists {
		logger.Info("Creating history database", map[string]interface{}{
			"path": dbPath,
		})
	}
	if err := store.initializeSchema(); err != nil {
		_ = conn.Close()
		return nil, unavailable("failed to initialize history schema", err)
	}

	return store, nil
}

func unavailable(msg string, err error) error {
	return errors.NewHumanError(errors.HistoryUnavailable, msg, err)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *Store) initializeSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS conversions (
			id TEXT PRIMARY KEY,
			format TEXT NOT NULL,
			direction TEXT NOT NULL,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_conversions_created_at ON conversions(created_at DESC);

		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);
		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`

	_, err := s.conn.Exec(schema)
	return err
}

// Path returns the database file location
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// Record inserts an entry.
func (s *Store) Record(e *Entry) error {
	query := `
		INSERT INTO conversions (id, format, direction, input, output, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.conn.Exec(query,
		e.ID,
		e.Format,
		e.Direction,
		e.Input,
		e.Output,
		e.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return unavailable("failed to record conversion", err)
	}

	s.logger.Debug("Recorded conversion", map[string]interface{}{
		"id":     e.ID,
		"format": e.Format,
	})
	return nil
}

// List returns entries newest first. A limit of zero or less returns all.
func (s *Store) List(limit int) ([]*Entry, error) {
	query := `
		SELECT id, format, direction, input, output, created_at
		FROM conversions
		ORDER BY created_at DESC, rowid DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, unavailable("failed to list history", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Format, &e.Direction, &e.Input, &e.Output, &createdAt); err != nil {
			return nil, unavailable("failed to scan history row", err)
		}
		if t, err := time.Parse(timeLayout, createdAt); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, unavailable("failed to read history", err)
	}
	return entries, nil
}

// Count returns the number of stored entries
func (s *Store) Count() (int, error) {
	var n int
	if err := s.conn.QueryRow("SELECT COUNT(*) FROM conversions").Scan(&n); err != nil {
		return 0, unavailable("failed to count history", err)
	}
	return n, nil
}

// Clear deletes every entry and returns how many were removed.
func (s *Store) Clear() (int64, error) {
	result, err := s.conn.Exec("DELETE FROM conversions")
	if err != nil {
		return 0, unavailable("failed to clear history", err)
	}
	n, _ := result.RowsAffected()

	s.logger.Info("Cleared history", map[string]interface{}{
		"removed": n,
	})
	return n, nil
}

// ExportOptions controls Export
type ExportOptions struct {
	Format output.Format // json or yaml
	Gzip   bool
}

// Export writes every entry, newest first, to w and returns the entry count.
func (s *Store) Export(w io.Writer, opts ExportOptions) (int, error) {
	if opts.Format != output.JSONFormat && opts.Format != output.YAMLFormat {
		return 0, fmt.Errorf("history export supports json or yaml, got %q", opts.Format)
	}

	entries, err := s.List(0)
	if err != nil {
		return 0, err
	}
	if entries == nil {
		entries = []*Entry{}
	}

	if !opts.Gzip {
		return len(entries), output.Encode(w, entries, opts.Format)
	}

	gz := gzip.NewWriter(w)
	if err := output.Encode(gz, entries, opts.Format); err != nil {
		_ = gz.Close()
		return 0, err
	}
	if err := gz.Close(); err != nil {
		return 0, fmt.Errorf("failed to finish gzip stream: %w", err)
	}
	return len(entries), nil
}
