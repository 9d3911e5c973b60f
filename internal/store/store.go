// Package store keeps privacy-conscious visit counts and a log of delivered
// contact messages in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Visit is one tracked page view. The client address is only ever stored
// hashed.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Message is a delivered contact-form message. The body is not kept.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats summarises the tables for the admin dashboard.
type Stats struct {
	TotalVisitors    int64     `json:"total_visitors"`
	UniqueVisitors   int64     `json:"unique_visitors"`
	VisitorsToday    int64     `json:"visitors_today"`
	VisitorsThisWeek int64     `json:"visitors_this_week"`
	TotalMessages    int64     `json:"total_messages"`
	TopPaths         []Path    `json:"top_paths"`
	RecentVisitors   []Visit   `json:"recent_visitors"`
	RecentMessages   []Message `json:"recent_messages"`
}

// Path is a page and its view count.
type Path struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// ErrNotFound is returned when a row to delete does not exist.
var ErrNotFound = errors.New("store: not found")

// DB is the site's database.
type DB struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(ctx context.Context, path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_time_format=sqlite&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// SQLite serialises writers anyway; one connection avoids SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	d := &DB{db: sqlDB, now: time.Now}
	if err := d.migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) Close() error { return d.db.Close() }

// Ping checks the connection, for health checks.
func (d *DB) Ping(ctx context.Context) error { return d.db.PingContext(ctx) }

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS visits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS visits_timestamp ON visits (timestamp)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`,
}

func (d *DB) migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := d.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// RecordVisit stores a page view.
func (d *DB) RecordVisit(ctx context.Context, hashedIP, userAgent, path string) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO visits (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashedIP, userAgent, path, d.now().UTC())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// RecordMessage stores a delivered message.
func (d *DB) RecordMessage(ctx context.Context, name, email string) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO messages (id, name, email, created_at)
		VALUES (?, ?, ?, ?)
	`, uuid.NewString(), name, email, d.now().UTC())
	if err != nil {
		return fmt.Errorf("record message: %w", err)
	}
	return nil
}

// DeleteMessage removes one message by id.
func (d *DB) DeleteMessage(ctx context.Context, id string) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PruneVisits deletes visits older than the retention period and returns how
// many were removed.
func (d *DB) PruneVisits(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := d.now().UTC().Add(-retention)
	res, err := d.db.ExecContext(ctx, `DELETE FROM visits WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune visits: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
