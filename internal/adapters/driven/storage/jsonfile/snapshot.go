// Package jsonfile provides JSON-file index persistence.
//
// The snapshot is one JSON document with a record per topic, written
// atomically via a rename so readers never observe a partial file. It
// backs the export/import commands and serves as a portable alternative
// to the SQLite store.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/snipdex/snipdex/internal/core/domain"
	"github.com/snipdex/snipdex/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SnapshotStore = (*Store)(nil)

// snapshotFile is the on-disk layout.
type snapshotFile struct {
	Entries []entryRecord       `json:"entries"`
	Report  *domain.BuildReport `json:"report,omitempty"`
}

// entryRecord mirrors domain.Entry with explicit JSON field names so
// the format stays stable independent of domain struct changes.
type entryRecord struct {
	Topic       string         `json:"topic"`
	Tags        []string       `json:"tags,omitempty"`
	Description string         `json:"description,omitempty"`
	Samples     []sampleRecord `json:"samples,omitempty"`
}

type sampleRecord struct {
	Language string `json:"language"`
	Body     string `json:"body"`
	Caption  string `json:"caption,omitempty"`
}

// Store is a JSON-file implementation of driven.SnapshotStore.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
// The file is created on the first SaveIndex.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// SaveIndex writes the entries to the snapshot file atomically.
func (s *Store) SaveIndex(ctx context.Context, entries []domain.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := s.read()
	if err != nil {
		return err
	}

	file.Entries = make([]entryRecord, 0, len(entries))
	for _, entry := range entries {
		record := entryRecord{
			Topic:       entry.Topic,
			Tags:        entry.Tags,
			Description: entry.Description,
		}
		for _, sample := range entry.Samples {
			record.Samples = append(record.Samples, sampleRecord(sample))
		}
		file.Entries = append(file.Entries, record)
	}

	return s.write(file)
}

// LoadIndex returns all persisted entries.
func (s *Store) LoadIndex(ctx context.Context) ([]domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := s.read()
	if err != nil {
		return nil, err
	}
	if len(file.Entries) == 0 {
		return nil, domain.ErrNotFound
	}

	entries := make([]domain.Entry, 0, len(file.Entries))
	for _, record := range file.Entries {
		entry := domain.Entry{
			Topic:       record.Topic,
			Tags:        record.Tags,
			Description: record.Description,
		}
		for _, sample := range record.Samples {
			entry.Samples = append(entry.Samples, domain.CodeSample(sample))
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// SaveReport records the latest build report in the snapshot file.
func (s *Store) SaveReport(ctx context.Context, report *domain.BuildReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := s.read()
	if err != nil {
		return err
	}
	file.Report = report
	return s.write(file)
}

// LastReport returns the recorded build report.
func (s *Store) LastReport(ctx context.Context) (*domain.BuildReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := s.read()
	if err != nil {
		return nil, err
	}
	if file.Report == nil {
		return nil, domain.ErrNotFound
	}
	return file.Report, nil
}

// Close is a no-op; the store holds no open resources.
func (s *Store) Close() error {
	return nil
}

// read loads the snapshot file, returning an empty snapshot when the
// file does not exist yet.
func (s *Store) read() (*snapshotFile, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &snapshotFile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &file, nil
}

// write marshals and atomically replaces the snapshot file.
func (s *Store) write(file *snapshotFile) error {
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
