package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"))
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordVisitAndStats(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now.Add(-10 * 24 * time.Hour) }
	require.NoError(t, s.RecordVisit(ctx, "aaaa", "curl", "/"))

	s.now = func() time.Time { return now.Add(-2 * 24 * time.Hour) }
	require.NoError(t, s.RecordVisit(ctx, "bbbb", "firefox", "/"))

	s.now = func() time.Time { return now.Add(-time.Hour) }
	require.NoError(t, s.RecordVisit(ctx, "aaaa", "curl", "/resume"))

	s.now = func() time.Time { return now }
	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalVisitors)
	assert.Equal(t, int64(2), stats.UniqueVisitors)
	assert.Equal(t, int64(1), stats.VisitorsToday)
	assert.Equal(t, int64(2), stats.VisitorsThisWeek)
	require.Len(t, stats.RecentVisitors, 3)
	assert.Equal(t, "/resume", stats.RecentVisitors[0].Path)
}

func TestRecordClickUpserts(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.RecordClick(ctx, "github", "https://github.com/a"))
	require.NoError(t, s.RecordClick(ctx, "github", "https://github.com/a"))
	require.NoError(t, s.RecordClick(ctx, "linkedin", "https://linkedin.com/in/a"))

	links, err := s.Links(ctx)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "github", links[0].Key)
	assert.Equal(t, int64(2), links[0].Clicks)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalLinks)
	assert.Equal(t, int64(3), stats.TotalClicks)
}

func TestCleanupRemovesOldVisits(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Now()

	s.now = func() time.Time { return now.Add(-Retention - time.Hour) }
	require.NoError(t, s.RecordVisit(ctx, "old", "", "/"))
	s.now = func() time.Time { return now }
	require.NoError(t, s.RecordVisit(ctx, "new", "", "/"))

	n, err := s.Cleanup(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	visitors, err := s.Visitors(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visitors, 1)
	assert.Equal(t, "new", visitors[0].HashedIP)
}

func TestTrackerFlushesOnClose(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	h, err := NewHasher()
	require.NoError(t, err)

	tr := NewTracker(s, h, 8)
	assert.True(t, tr.Track("10.0.0.1", "ua", "/"))
	assert.True(t, tr.Track("10.0.0.1", "ua", "/"))
	tr.Close()

	visitors, err := s.Visitors(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visitors, 2)
	assert.Equal(t, h.Hash("10.0.0.1"), visitors[0].HashedIP)
	assert.Len(t, visitors[0].HashedIP, 16)
	assert.NotContains(t, visitors[0].HashedIP, "10.0.0.1")
}

func TestUntracked(t *testing.T) {
	assert.True(t, Untracked("/static/app.css"))
	assert.True(t, Untracked("/admin/dashboard"))
	assert.False(t, Untracked("/"))
	assert.False(t, Untracked("/resume"))
}
