// apps/solver/internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Saving runs with their per-game results, and the best-runs listing.

package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/bench"
)

//go:embed migrations/*.sql
var migrations embed.FS

// timeLayout is fixed-width so started_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the database at dsn and migrates it.
func OpenSQLite(dsn string) (Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

// openDB ensures the parent directory exists, then opens with busy timeout and WAL.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies embedded migrations in lexical order, each inside its own
// transaction, skipping files already recorded in _migrations.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(migrations, "migrations", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlText, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlText)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// SaveRun inserts the run row and one row per game in a single transaction.
// Saving the same run twice is ignored.
func (s *sqliteStore) SaveRun(ctx context.Context, r *bench.Report) error {
	hist, err := json.Marshal(r.Histogram)
	if err != nil {
		return err
	}
	losses := r.Losses
	if losses == nil {
		losses = []string{}
	}
	lossJSON, err := json.Marshal(losses)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
        INSERT OR IGNORE INTO runs
            (id, started_at, duration_ms, dictionary, opening, games, wins, hit_rate, avg_turns, histogram, losses)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.StartedAt.UTC().Format(timeLayout), r.Duration.Milliseconds(), r.Dictionary, r.Opening,
		r.Games, r.Wins, r.HitRate, r.AvgTurns, string(hist), string(lossJSON),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		log.Warn().Str("run", r.ID).Msg("run already saved")
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO run_games (run_id, answer, won, turns) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, g := range r.Results {
		if _, err := stmt.ExecContext(ctx, r.ID, g.Answer.String(), g.Won, g.Turns); err != nil {
			return fmt.Errorf("insert game %s: %w", g.Answer, err)
		}
	}
	return tx.Commit()
}

const runColumns = `id, started_at, duration_ms, dictionary, opening, games, wins, hit_rate, avg_turns, histogram, losses`

func (s *sqliteStore) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id=?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListRuns fetches the best runs.
// Ordered by hit rate DESC, then average turns ASC, then started_at ASC.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+runColumns+`
        FROM runs
        ORDER BY hit_rate DESC, avg_turns ASC, started_at ASC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Close() error { return s.db.Close() }

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var (
		r                Run
		started          string
		durMs            int64
		hist, lossesJSON string
	)
	if err := sc.Scan(&r.ID, &started, &durMs, &r.Dictionary, &r.Opening, &r.Games, &r.Wins,
		&r.HitRate, &r.AvgTurns, &hist, &lossesJSON); err != nil {
		return nil, err
	}
	t, err := time.Parse(timeLayout, started)
	if err != nil {
		return nil, fmt.Errorf("run %s: started_at: %w", r.ID, err)
	}
	r.StartedAt = t
	r.Duration = time.Duration(durMs) * time.Millisecond
	if err := json.Unmarshal([]byte(hist), &r.Histogram); err != nil {
		return nil, fmt.Errorf("run %s: histogram: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(lossesJSON), &r.Losses); err != nil {
		return nil, fmt.Errorf("run %s: losses: %w", r.ID, err)
	}
	if len(r.Losses) == 0 {
		r.Losses = nil
	}
	return &r, nil
}
