// Package sqlite provides SQLite-backed index persistence.
//
// The built index is stored one record per topic, with samples in a
// child table ordered by position. SaveIndex replaces the whole
// snapshot in a single transaction, so readers never observe a partial
// index.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/snipdex/snipdex/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/snipdex/snipdex/internal/core/domain"
	"github.com/snipdex/snipdex/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SnapshotStore = (*Store)(nil)

// Store is a SQLite-based implementation of driven.SnapshotStore.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.snipdex/data/index.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".snipdex", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "index.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveIndex replaces the persisted snapshot with the given entries.
// The whole replace happens in one transaction.
func (s *Store) SaveIndex(ctx context.Context, entries []domain.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM entries"); err != nil {
		return fmt.Errorf("clearing entries: %w", err)
	}

	for _, entry := range entries {
		tagsJSON, err := json.Marshal(entry.Tags)
		if err != nil {
			return fmt.Errorf("marshalling tags for %q: %w", entry.Topic, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO entries (topic, tags, description)
			VALUES (?, ?, ?)
		`, entry.Topic, string(tagsJSON), entry.Description)
		if err != nil {
			return fmt.Errorf("inserting entry %q: %w", entry.Topic, err)
		}

		for i, sample := range entry.Samples {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO samples (topic, position, language, body, caption)
				VALUES (?, ?, ?, ?, ?)
			`, entry.Topic, i, sample.Language, sample.Body, sample.Caption)
			if err != nil {
				return fmt.Errorf("inserting sample %d for %q: %w", i, entry.Topic, err)
			}
		}
	}

	return tx.Commit()
}

// LoadIndex returns all persisted entries in topic-key sort order.
func (s *Store) LoadIndex(ctx context.Context) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT topic, tags, description FROM entries ORDER BY topic
	`)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var entry domain.Entry
		var tagsJSON string
		if err := rows.Scan(&entry.Topic, &tagsJSON, &entry.Description); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		if err := json.Unmarshal([]byte(tagsJSON), &entry.Tags); err != nil {
			return nil, fmt.Errorf("unmarshalling tags for %q: %w", entry.Topic, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	if len(entries) == 0 {
		return nil, domain.ErrNotFound
	}

	for i := range entries {
		samples, err := s.loadSamples(ctx, entries[i].Topic)
		if err != nil {
			return nil, err
		}
		entries[i].Samples = samples
	}

	return entries, nil
}

// loadSamples returns a topic's samples ordered by position.
func (s *Store) loadSamples(ctx context.Context, topic string) ([]domain.CodeSample, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT language, body, caption FROM samples
		WHERE topic = ? ORDER BY position
	`, topic)
	if err != nil {
		return nil, fmt.Errorf("querying samples for %q: %w", topic, err)
	}
	defer rows.Close()

	var samples []domain.CodeSample
	for rows.Next() {
		var sample domain.CodeSample
		if err := rows.Scan(&sample.Language, &sample.Body, &sample.Caption); err != nil {
			return nil, fmt.Errorf("scanning sample: %w", err)
		}
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}

// SaveReport records a build report as history.
func (s *Store) SaveReport(ctx context.Context, report *domain.BuildReport) error {
	warningsJSON, err := json.Marshal(report.Warnings)
	if err != nil {
		return fmt.Errorf("marshalling warnings: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO builds (id, sections, topics, merged, skipped, warnings, built_at, duration)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, report.ID, report.Sections, report.Topics, report.Merged, report.Skipped,
		string(warningsJSON), report.BuiltAt.UTC(), int64(report.Duration))
	if err != nil {
		return fmt.Errorf("inserting build report: %w", err)
	}
	return nil
}

// LastReport returns the most recent build report.
func (s *Store) LastReport(ctx context.Context) (*domain.BuildReport, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, sections, topics, merged, skipped, warnings, built_at, duration
		FROM builds ORDER BY built_at DESC LIMIT 1
	`)

	var report domain.BuildReport
	var warningsJSON string
	var builtAt time.Time
	var duration int64
	err := row.Scan(&report.ID, &report.Sections, &report.Topics, &report.Merged,
		&report.Skipped, &warningsJSON, &builtAt, &duration)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning build report: %w", err)
	}

	if err := json.Unmarshal([]byte(warningsJSON), &report.Warnings); err != nil {
		return nil, fmt.Errorf("unmarshalling warnings: %w", err)
	}
	report.BuiltAt = builtAt.UTC()
	report.Duration = time.Duration(duration)

	return &report, nil
}
