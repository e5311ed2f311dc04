// Package store guarda en SQLite las frecuencias detectadas por el processor.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Reading es un BPM detectado en un instante.
type Reading struct {
	Session string
	At      time.Time
	BPM     int
}

// Summary agrega las lecturas de una sesión.
type Summary struct {
	Session string
	Count   int
	MinBPM  int
	MaxBPM  int
	AvgBPM  float64
}

type Store struct {
	db *sql.DB
}

// Open crea o abre la base en path y aplica el esquema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// un solo escritor
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record guarda una lectura.
func (s *Store) Record(ctx context.Context, r Reading) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO hr_readings (session, ts, bpm) VALUES (?, ?, ?)`,
		r.Session, r.At.UnixMilli(), r.BPM)
	if err != nil {
		return fmt.Errorf("failed to record reading: %w", err)
	}
	return nil
}

// Readings devuelve las lecturas de una sesión en orden temporal.
func (s *Store) Readings(ctx context.Context, session string) ([]Reading, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session, ts, bpm FROM hr_readings WHERE session = ? ORDER BY ts, id`,
		session)
	if err != nil {
		return nil, fmt.Errorf("failed to query readings: %w", err)
	}
	defer rows.Close()

	var out []Reading
	for rows.Next() {
		var (
			r  Reading
			ms int64
		)
		if err := rows.Scan(&r.Session, &ms, &r.BPM); err != nil {
			return nil, fmt.Errorf("failed to scan reading: %w", err)
		}
		r.At = time.UnixMilli(ms)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Summarize agrega una sesión; Count == 0 si no hay lecturas.
func (s *Store) Summarize(ctx context.Context, session string) (Summary, error) {
	sum := Summary{Session: session}
	var (
		minBPM, maxBPM sql.NullInt64
		avg            sql.NullFloat64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), MIN(bpm), MAX(bpm), AVG(bpm) FROM hr_readings WHERE session = ?`,
		session).Scan(&sum.Count, &minBPM, &maxBPM, &avg)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to summarize session: %w", err)
	}
	sum.MinBPM = int(minBPM.Int64)
	sum.MaxBPM = int(maxBPM.Int64)
	sum.AvgBPM = avg.Float64
	return sum, nil
}
