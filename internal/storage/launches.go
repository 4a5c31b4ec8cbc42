package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Launch is one recorded trigger of an entry.
type Launch struct {
	SessionID  string
	EntryName  string
	Target     string // formatted selection handed to the launcher
	Query      string
	LaunchedAt time.Time
}

// RecordLaunch inserts one launch row stamped with the store's session
// id and the current time.
func (s *HistoryStore) RecordLaunch(ctx context.Context, entryName, target, query string) error {
	if entryName == "" {
		return errors.New("entry name is required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO launches (session_id, entry_name, target, query, launched_at_unix_ms)
		VALUES (?, ?, ?, ?, ?)
	`, s.sessionID, entryName, target, query, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record launch: %w", err)
	}
	return nil
}

// Recent returns the most recent launches, newest first.
func (s *HistoryStore) Recent(ctx context.Context, limit int) ([]Launch, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, entry_name, target, query, launched_at_unix_ms
		FROM launches
		ORDER BY launched_at_unix_ms DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query launches: %w", err)
	}
	defer rows.Close()

	var launches []Launch
	for rows.Next() {
		var l Launch
		var ms int64
		if err := rows.Scan(&l.SessionID, &l.EntryName, &l.Target, &l.Query, &ms); err != nil {
			return nil, fmt.Errorf("failed to scan launch: %w", err)
		}
		l.LaunchedAt = time.UnixMilli(ms)
		launches = append(launches, l)
	}
	return launches, rows.Err()
}

// CountLaunches returns the total number of recorded launches.
func (s *HistoryStore) CountLaunches(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM launches`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count launches: %w", err)
	}
	return n, nil
}
