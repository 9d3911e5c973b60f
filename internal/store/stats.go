package store

import (
	"context"
	"fmt"
	"time"
)

// Stats collects the dashboard summary.
func (d *DB) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := d.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visits`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visits`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visits WHERE timestamp >= ?`, []any{startOfDay}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visits WHERE timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour)}},
		{&stats.TotalMessages, `SELECT COUNT(*) FROM messages`, nil},
	}
	for _, c := range counts {
		if err := d.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	var err error
	if stats.TopPaths, err = d.topPaths(ctx, 10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = d.RecentVisits(ctx, 50); err != nil {
		return nil, err
	}
	if stats.RecentMessages, err = d.RecentMessages(ctx, 20); err != nil {
		return nil, err
	}
	return stats, nil
}

func (d *DB) topPaths(ctx context.Context, limit int) ([]Path, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS views
		FROM visits
		GROUP BY path
		ORDER BY views DESC, path ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}
	defer rows.Close()

	var paths []Path
	for rows.Next() {
		var p Path
		if err := rows.Scan(&p.Path, &p.Views); err != nil {
			return nil, fmt.Errorf("top paths: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// RecentVisits returns the newest visits first.
func (d *DB) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visits
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("recent visits: %w", err)
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// RecentMessages returns the newest messages first.
func (d *DB) RecentMessages(ctx context.Context, limit int) ([]Message, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, name, email, created_at
		FROM messages
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent messages: %w", err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("recent messages: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
