package sink

import (
	"context"
	"database/sql"
	"encoding/json"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is a file-backed sink for running without an InfluxDB instance.
// Points land in an append-only table with tags and fields as JSON text.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS points (
		ts INTEGER NOT NULL,
		measurement TEXT NOT NULL,
		tags TEXT NOT NULL,
		fields TEXT NOT NULL
	)`)
	return err
}

func (s *SQLite) WritePoint(ctx context.Context, p Point) error {
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return &WriteError{Measurement: p.Measurement, Err: err}
	}
	// NaN coordinates fail JSON encoding, matching the InfluxDB driver's
	// rejection of unparseable locations.
	fields, err := json.Marshal(p.Fields)
	if err != nil {
		return &WriteError{Measurement: p.Measurement, Err: err}
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO points (ts, measurement, tags, fields) VALUES (?, ?, ?, ?)`,
		p.Time.Unix(), p.Measurement, string(tags), string(fields))
	if err != nil {
		return &WriteError{Measurement: p.Measurement, Err: err}
	}
	return nil
}

func (s *SQLite) Close() error { return s.db.Close() }
