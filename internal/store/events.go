package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Record appends an event to the journal.
func (s *Store) Record(kind Kind, detail string, at time.Time) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO events (kind, detail, at_ms) VALUES (?, ?, ?)`,
		string(kind), detail, at.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("record %s: %w", kind, err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// ListEvents returns the most recent events, newest first. A limit of zero
// or less returns everything.
func (s *Store) ListEvents(limit int) ([]Event, error) {
	query := `SELECT id, kind, detail, at_ms FROM events ORDER BY at_ms DESC, id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var kind string
		var atMs int64
		if err := rows.Scan(&e.ID, &kind, &e.Detail, &atMs); err != nil {
			return nil, err
		}
		e.Kind = Kind(kind)
		e.At = time.UnixMilli(atMs)
		events = append(events, e)
	}
	return events, rows.Err()
}

// CountByKind returns how many events of each kind were recorded.
func (s *Store) CountByKind() (map[Kind]int, error) {
	rows, err := s.db.Query(`SELECT kind, COUNT(*) FROM events GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	defer rows.Close()

	counts := make(map[Kind]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		counts[Kind(kind)] = n
	}
	return counts, rows.Err()
}

// Summary aggregates the journal.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	err := s.db.QueryRow(`
		SELECT
			COALESCE(SUM(CASE WHEN kind = 'code' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = 'code' AND detail = 'wrong' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = 'reveal' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = 'tap' THEN 1 ELSE 0 END), 0)
		FROM events`,
	).Scan(&sum.Attempts, &sum.WrongAttempts, &sum.Reveals, &sum.Taps)
	if err != nil {
		return Summary{}, fmt.Errorf("summary: %w", err)
	}

	unlocked, err := s.Mark(MarkUnlocked)
	if err != nil {
		return Summary{}, err
	}
	sum.UnlockedAt = unlocked
	return sum, nil
}

// TapRate buckets taps into one-second slots ending at now. The last slot
// covers the second up to now.
func (s *Store) TapRate(now time.Time, seconds int) ([]int, error) {
	if seconds <= 0 {
		return nil, nil
	}
	end := now.UnixMilli()
	start := end - int64(seconds)*1000

	rows, err := s.db.Query(`
		SELECT (at_ms - ?) / 1000 AS slot, COUNT(*)
		FROM events
		WHERE kind = 'tap' AND at_ms > ? AND at_ms <= ?
		GROUP BY slot`,
		start+1, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("tap rate: %w", err)
	}
	defer rows.Close()

	buckets := make([]int, seconds)
	for rows.Next() {
		var slot int64
		var n int
		if err := rows.Scan(&slot, &n); err != nil {
			return nil, err
		}
		if slot >= 0 && slot < int64(seconds) {
			buckets[slot] = n
		}
	}
	return buckets, rows.Err()
}

const (
	MarkUnlocked = "unlocked"
	MarkFinale   = "finale"
)

// SetMark stores the first time a milestone was reached. Later calls for
// the same key are ignored.
func (s *Store) SetMark(key string, at time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO marks (key, at_ms) VALUES (?, ?) ON CONFLICT(key) DO NOTHING`,
		key, at.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("set mark %q: %w", key, err)
	}
	return nil
}

// Mark returns when a milestone was reached, or nil if it was not.
func (s *Store) Mark(key string) (*time.Time, error) {
	var atMs int64
	err := s.db.QueryRow(`SELECT at_ms FROM marks WHERE key = ?`, key).Scan(&atMs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get mark %q: %w", key, err)
	}
	t := time.UnixMilli(atMs)
	return &t, nil
}
