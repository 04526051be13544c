package analytics

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func newTestTracker(t *testing.T, db *sql.DB, now time.Time) *Tracker {
	t.Helper()
	store, err := NewStore(db)
	require.NoError(t, err)
	tr, err := NewTracker(context.Background(), store, "example.com", nil)
	require.NoError(t, err)
	tr.now = func() time.Time { return now }
	return tr
}

func countViews(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM page_views`).Scan(&n))
	return n
}

func TestTrackerSummary(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	tr := newTestTracker(t, db, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	hits := []Hit{
		{Path: "/", IP: "10.0.0.1", UserAgent: chromeMac, Referrer: "https://www.google.com/"},
		{Path: "/", IP: "10.0.0.1", UserAgent: chromeMac},
		{Path: "/projects", IP: "10.0.0.2", UserAgent: firefoxLin, Referrer: "https://example.com/"},
		{Path: "/", IP: "66.249.66.1", UserAgent: googlebot},
	}
	for _, h := range hits {
		require.NoError(t, tr.Record(ctx, h))
	}

	sum, err := tr.Summary(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Views)
	assert.Equal(t, 2, sum.Visitors)
	assert.Equal(t, 1, sum.BotViews)
	assert.Equal(t, []PageStat{{"/", 2}, {"/projects", 1}}, sum.TopPages)
	assert.Equal(t, []DimensionStat{{"Direct", 2}, {"Google", 1}}, sum.Referrers)
	assert.Equal(t, []DimensionStat{{"Chrome", 2}, {"Firefox", 1}}, sum.Browsers)
}

func TestSummaryExcludesOldViews(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, db, now.AddDate(0, 0, -40))
	ctx := context.Background()

	require.NoError(t, tr.Record(ctx, Hit{Path: "/blog", IP: "10.0.0.1", UserAgent: chromeMac}))
	tr.now = func() time.Time { return now }
	require.NoError(t, tr.Record(ctx, Hit{Path: "/", IP: "10.0.0.1", UserAgent: chromeMac}))

	sum, err := tr.Summary(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Views)
	assert.Equal(t, []PageStat{{"/", 1}}, sum.TopPages)
}

func TestSaltPersists(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	now := time.Now()

	first := newTestTracker(t, db, now)
	second := newTestTracker(t, db, now)
	assert.NotEmpty(t, first.salt)
	assert.Equal(t, first.salt, second.salt)
}

func TestNewStoreIsIdempotent(t *testing.T) {
	db := openDB(t)
	defer db.Close()

	_, err := NewStore(db)
	require.NoError(t, err)
	s, err := NewStore(db)
	require.NoError(t, err)

	v, err := s.Setting(context.Background(), "schema_version")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestDeleteBefore(t *testing.T) {
	db := openDB(t)
	defer db.Close()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, db, now.AddDate(0, 0, -100))
	ctx := context.Background()
	require.NoError(t, tr.Record(ctx, Hit{Path: "/", IP: "10.0.0.1", UserAgent: chromeMac}))
	tr.now = func() time.Time { return now }
	require.NoError(t, tr.Record(ctx, Hit{Path: "/", IP: "10.0.0.1", UserAgent: chromeMac}))

	n, err := tr.store.DeleteBefore(ctx, now.AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 1, countViews(t, db))
}

func TestCleanupLoopStops(t *testing.T) {
	ignore := goleak.IgnoreCurrent()
	db := openDB(t)
	now := time.Now()
	tr := newTestTracker(t, db, now.AddDate(0, 0, -100))
	require.NoError(t, tr.Record(context.Background(), Hit{Path: "/", IP: "10.0.0.1", UserAgent: chromeMac}))
	tr.now = func() time.Time { return now }

	tr.StartCleanup(90, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		var n int
		return db.QueryRow(`SELECT COUNT(*) FROM page_views`).Scan(&n) == nil && n == 0
	}, 2*time.Second, 10*time.Millisecond)

	tr.Stop()
	tr.Stop()
	require.NoError(t, db.Close())
	goleak.VerifyNone(t, ignore)
}
