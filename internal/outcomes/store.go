// Package outcomes persists success events in SQLite so runs can be
// compared across regimes and sessions. Nothing in the control path
// depends on this store; a write failure only costs telemetry.
package outcomes

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/UditKarth/Reward-Modeling-Viz/internal/reward"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	regime      TEXT NOT NULL,
	started_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS success_events (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id       TEXT NOT NULL,
	regime       TEXT NOT NULL,
	success_num  INTEGER NOT NULL,
	ticks        INTEGER NOT NULL,
	mean_reward  REAL NOT NULL,
	created_at   TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE INDEX IF NOT EXISTS idx_success_events_regime
ON success_events(regime);
`

// #endregion schema

// #region store

// Store manages outcome persistence in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store

// #region begin-run

// BeginRun registers a new run for a regime and returns its ID.
func (s *Store) BeginRun(regime reward.Regime) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, regime, started_at) VALUES (?, ?, ?)`,
		id, string(regime), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// #endregion begin-run

// #region record-success

// RecordSuccess persists one success event.
func (s *Store) RecordSuccess(ev SuccessEvent) error {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO success_events (run_id, regime, success_num, ticks, mean_reward, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ev.RunID, string(ev.Regime), ev.SuccessNum, ev.Ticks, ev.MeanReward,
		ev.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert success event: %w", err)
	}
	return nil
}

// #endregion record-success

// #region recent

// RecentEvents returns the most recent success events, newest first.
func (s *Store) RecentEvents(limit int) ([]SuccessEvent, error) {
	rows, err := s.db.Query(
		`SELECT run_id, regime, success_num, ticks, mean_reward, created_at
		 FROM success_events ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var out []SuccessEvent
	for rows.Next() {
		var ev SuccessEvent
		var regime, createdStr string
		if err := rows.Scan(&ev.RunID, &regime, &ev.SuccessNum, &ev.Ticks, &ev.MeanReward, &createdStr); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Regime = reward.Regime(regime)
		ev.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return out, nil
}

// #endregion recent

// #region summaries

// summaryHalfLife is the age at which an event's weight halves.
const summaryHalfLife = 24.0 // hours

// Summaries aggregates success events per regime with decay-weighted
// mean reward. Regimes with no events are omitted.
func (s *Store) Summaries() ([]RegimeSummary, error) {
	rows, err := s.db.Query(
		`SELECT regime, ticks, mean_reward, created_at FROM success_events`,
	)
	if err != nil {
		return nil, fmt.Errorf("query summaries: %w", err)
	}
	defer rows.Close()

	type accum struct {
		count       int
		tickSum     float64
		weightedSum float64
		totalWeight float64
	}

	now := time.Now()
	acc := make(map[reward.Regime]*accum)

	for rows.Next() {
		var regime, createdStr string
		var ticks int
		var meanReward float64
		if err := rows.Scan(&regime, &ticks, &meanReward, &createdStr); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		createdAt, err := time.Parse(time.RFC3339Nano, createdStr)
		if err != nil {
			continue
		}
		weight := math.Exp(-now.Sub(createdAt).Hours() / summaryHalfLife)

		r := reward.Regime(regime)
		if _, ok := acc[r]; !ok {
			acc[r] = &accum{}
		}
		acc[r].count++
		acc[r].tickSum += float64(ticks)
		acc[r].weightedSum += meanReward * weight
		acc[r].totalWeight += weight
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summaries: %w", err)
	}

	var out []RegimeSummary
	for _, r := range reward.Regimes() {
		a, ok := acc[r]
		if !ok {
			continue
		}
		sum := RegimeSummary{
			Regime:    r,
			Successes: a.count,
			AvgTicks:  a.tickSum / float64(a.count),
		}
		if a.totalWeight > 0 {
			sum.MeanReward = a.weightedSum / a.totalWeight
		}
		out = append(out, sum)
	}
	return out, nil
}

// #endregion summaries
