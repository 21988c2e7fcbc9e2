package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"smartreview/internal/core"
)

// Store persists analysis runs in SQLite so past triage reports can be
// re-rendered without re-analyzing. One row per run; the full result and
// insights are stored as JSON documents.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the run history database in dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "smartreview.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return store, nil
}

// initialize creates the runs table
func (s *Store) initialize() error {
	runsTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source TEXT,
		text_column TEXT,
		rating_column TEXT,
		method TEXT,
		total_reviews INTEGER,
		urgent_count INTEGER,
		result_json TEXT,
		insights_json TEXT,
		date_analyzed DATETIME
	);`

	if _, err := s.db.Exec(runsTable); err != nil {
		return fmt.Errorf("failed to create runs table: %w", err)
	}
	return nil
}

// SaveRun stores one analysis run. The run's ID must be set by the caller.
func (s *Store) SaveRun(run core.AnalysisRun) error {
	resultJSON, err := json.Marshal(run.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	insightsJSON, err := json.Marshal(run.Insights)
	if err != nil {
		return fmt.Errorf("failed to marshal insights: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO runs
		(id, source, text_column, rating_column, method, total_reviews, urgent_count, result_json, insights_json, date_analyzed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Source, run.TextColumn, run.RatingColumn, run.Method,
		run.TotalReviews, run.UrgentCount, string(resultJSON), string(insightsJSON), run.DateAnalyzed)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// GetRun loads a run by ID.
func (s *Store) GetRun(id string) (*core.AnalysisRun, error) {
	row := s.db.QueryRow(`
		SELECT id, source, text_column, rating_column, method, total_reviews, urgent_count, result_json, insights_json, date_analyzed
		FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	return run, err
}

// LatestRun loads the most recently analyzed run, or nil when none exist.
func (s *Store) LatestRun() (*core.AnalysisRun, error) {
	row := s.db.QueryRow(`
		SELECT id, source, text_column, rating_column, method, total_reviews, urgent_count, result_json, insights_json, date_analyzed
		FROM runs ORDER BY date_analyzed DESC LIMIT 1`)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return run, err
}

// ListRuns returns run metadata (no result/insights payloads), newest first.
func (s *Store) ListRuns() ([]core.AnalysisRun, error) {
	rows, err := s.db.Query(`
		SELECT id, source, text_column, rating_column, method, total_reviews, urgent_count, date_analyzed
		FROM runs ORDER BY date_analyzed DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []core.AnalysisRun
	for rows.Next() {
		var run core.AnalysisRun
		var date time.Time
		if err := rows.Scan(&run.ID, &run.Source, &run.TextColumn, &run.RatingColumn,
			&run.Method, &run.TotalReviews, &run.UrgentCount, &date); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.DateAnalyzed = date
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// DeleteRun removes a stored run.
func (s *Store) DeleteRun(id string) error {
	if _, err := s.db.Exec(`DELETE FROM runs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete run %s: %w", id, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*core.AnalysisRun, error) {
	var run core.AnalysisRun
	var resultJSON, insightsJSON string
	var date time.Time

	err := row.Scan(&run.ID, &run.Source, &run.TextColumn, &run.RatingColumn,
		&run.Method, &run.TotalReviews, &run.UrgentCount, &resultJSON, &insightsJSON, &date)
	if err != nil {
		return nil, err
	}
	run.DateAnalyzed = date

	if resultJSON != "" && resultJSON != "null" {
		run.Result = &core.AnalysisResult{}
		if err := json.Unmarshal([]byte(resultJSON), run.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
	}
	if insightsJSON != "" && insightsJSON != "null" {
		run.Insights = &core.Insights{}
		if err := json.Unmarshal([]byte(insightsJSON), run.Insights); err != nil {
			return nil, fmt.Errorf("failed to unmarshal insights: %w", err)
		}
	}
	return &run, nil
}
