// SPDX-License-Identifier: MIT

// Package history keeps a local SQLite record of evaluation runs so that
// results across λ, seed and split choices can be compared later.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlda/eval"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrClosed is returned by a Store used after Close.
var ErrClosed = errors.New("history: store closed")

// Run is one recorded evaluation.
type Run struct {
	ID        uuid.UUID
	CreatedAt time.Time
	DataPath  string
	ModelPath string // set when a saved model was evaluated instead of a fresh fit
	Lambda    float64
	Seed      uint64
	Split     float64
	Dim       int
	TrainRows int
	TestRows  int
	Report    eval.Report
}

// Store is a handle to the runs database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	created_at  INTEGER NOT NULL,
	data_path   TEXT NOT NULL,
	model_path  TEXT NOT NULL DEFAULT '',
	lambda      REAL NOT NULL,
	seed        INTEGER NOT NULL,
	split       REAL NOT NULL,
	dim         INTEGER NOT NULL,
	train_rows  INTEGER NOT NULL,
	test_rows   INTEGER NOT NULL,
	tp          INTEGER NOT NULL,
	tn          INTEGER NOT NULL,
	fp          INTEGER NOT NULL,
	fn          INTEGER NOT NULL,
	accuracy    REAL NOT NULL,
	error_rate  REAL NOT NULL,
	prec        REAL NOT NULL,
	recall      REAL NOT NULL,
	f1          REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_created_at ON runs(created_at);
`

// Open connects to the SQLite database at dsn, creating the parent
// directory of a plain file path, applying pragmas and the schema.
func Open(dsn string) (*Store, error) {
	if err := ensureDir(dsn); err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// applyPragmas configures SQLite for single-user command-line use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}

	return nil
}

func ensureDir(dsn string) error {
	if dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return nil
	}

	return os.MkdirAll(filepath.Dir(dsn), 0o755)
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

// Record inserts run, assigning an ID and CreatedAt when they are zero, and
// returns the stored value.
func (s *Store) Record(ctx context.Context, run Run) (Run, error) {
	if s.db == nil {
		return Run{}, ErrClosed
	}
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	r := run.Report
	_, err := s.db.ExecContext(ctx, `INSERT INTO runs (
		id, created_at, data_path, model_path, lambda, seed, split, dim, train_rows, test_rows,
		tp, tn, fp, fn, accuracy, error_rate, prec, recall, f1
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(), run.CreatedAt.UnixNano(), run.DataPath, run.ModelPath,
		run.Lambda, int64(run.Seed), run.Split, run.Dim, run.TrainRows, run.TestRows,
		r.TP, r.TN, r.FP, r.FN, r.Accuracy, r.ErrorRate, r.Precision, r.Recall, r.F1,
	)
	if err != nil {
		return Run{}, fmt.Errorf("record run %s: %w", run.ID, err)
	}

	return run, nil
}

// List returns up to limit runs, newest first. limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	q := `SELECT id, created_at, data_path, model_path, lambda, seed, split, dim, train_rows, test_rows,
		tp, tn, fp, fn, accuracy, error_rate, prec, recall, f1
		FROM runs ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			run     Run
			id      string
			created int64
			seed    int64
			r       = &run.Report
		)
		if err := rows.Scan(&id, &created, &run.DataPath, &run.ModelPath, &run.Lambda, &seed, &run.Split,
			&run.Dim, &run.TrainRows, &run.TestRows,
			&r.TP, &r.TN, &r.FP, &r.FN, &r.Accuracy, &r.ErrorRate, &r.Precision, &r.Recall, &r.F1); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("run id %q: %w", id, err)
		}
		run.CreatedAt = time.Unix(0, created)
		run.Seed = uint64(seed)
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	return out, nil
}
