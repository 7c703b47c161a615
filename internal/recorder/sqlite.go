package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists generation runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS generation_runs (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at        INTEGER NOT NULL,
			start_date        TEXT NOT NULL,
			num_days          INTEGER NOT NULL,
			time_step_minutes INTEGER NOT NULL,
			tariff_name       TEXT,
			rows              INTEGER NOT NULL,
			output_path       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created ON generation_runs(created_at)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(run Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(
		`INSERT INTO generation_runs
			(created_at, start_date, num_days, time_step_minutes, tariff_name, rows, output_path)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.CreatedAt.Unix(),
		run.StartDate,
		run.NumDays,
		run.TimeStepMinutes,
		run.TariffName,
		run.Rows,
		run.OutputPath,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
