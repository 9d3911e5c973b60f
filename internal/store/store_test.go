package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T, now time.Time) *DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.now = func() time.Time { return now }
	return db
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "again.db")
	ctx := context.Background()

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.RecordVisit(ctx, "abc", "ua", "/"))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	stats, err := db.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalVisitors)
}

func TestStats(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	db := openTest(t, now)
	ctx := context.Background()

	db.now = func() time.Time { return now.Add(-10 * 24 * time.Hour) }
	require.NoError(t, db.RecordVisit(ctx, "old", "ua", "/"))
	db.now = func() time.Time { return now.Add(-2 * 24 * time.Hour) }
	require.NoError(t, db.RecordVisit(ctx, "a", "ua", "/"))
	db.now = func() time.Time { return now }
	require.NoError(t, db.RecordVisit(ctx, "a", "ua", "/"))
	require.NoError(t, db.RecordVisit(ctx, "b", "ua", "/sections/projects"))
	require.NoError(t, db.RecordMessage(ctx, "Ada", "ada@example.com"))

	stats, err := db.Stats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 4, stats.TotalVisitors)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitorsToday)
	assert.EqualValues(t, 3, stats.VisitorsThisWeek)
	assert.EqualValues(t, 1, stats.TotalMessages)
	require.NotEmpty(t, stats.TopPaths)
	assert.Equal(t, Path{Path: "/", Views: 3}, stats.TopPaths[0])
	require.Len(t, stats.RecentMessages, 1)
	assert.Equal(t, "Ada", stats.RecentMessages[0].Name)
	assert.NotEmpty(t, stats.RecentMessages[0].ID)
}

func TestPruneVisits(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	db := openTest(t, now.AddDate(-2, 0, 0))
	ctx := context.Background()

	require.NoError(t, db.RecordVisit(ctx, "old", "ua", "/"))
	db.now = func() time.Time { return now }
	require.NoError(t, db.RecordVisit(ctx, "new", "ua", "/"))

	n, err := db.PruneVisits(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	visits, err := db.RecentVisits(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "new", visits[0].HashedIP)
}

func TestDeleteMessage(t *testing.T) {
	db := openTest(t, time.Now())
	ctx := context.Background()

	require.NoError(t, db.RecordMessage(ctx, "Ada", "ada@example.com"))
	msgs, err := db.RecentMessages(ctx, 1)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	require.NoError(t, db.DeleteMessage(ctx, msgs[0].ID))
	assert.ErrorIs(t, db.DeleteMessage(ctx, msgs[0].ID), ErrNotFound)
}
