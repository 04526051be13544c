package analytics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// timeLayout is fixed width so stored timestamps compare correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// currentSchemaVersion is the latest schema version. Increment when adding migrations.
const currentSchemaVersion = 1

// Store persists page views. It shares the site's SQLite handle and does
// not close it.
type Store struct {
	db *sql.DB
}

// NewStore creates the analytics tables in db if needed.
func NewStore(db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("analytics: ensure schema: %w", err)
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("analytics: migrate: %w", err)
	}
	return s, nil
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS page_views (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL,
			visitor_id TEXT NOT NULL,
			browser TEXT NOT NULL,
			os TEXT NOT NULL,
			device TEXT NOT NULL,
			referrer TEXT NOT NULL,
			bot TEXT NOT NULL DEFAULT '',
			timestamp TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_page_views_timestamp ON page_views(timestamp);
		CREATE INDEX IF NOT EXISTS idx_page_views_path ON page_views(path);

		CREATE TABLE IF NOT EXISTS analytics_settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

func (s *Store) migrate() error {
	verStr, err := s.Setting(context.Background(), "schema_version")
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	version := 0
	if verStr != "" {
		if version, err = strconv.Atoi(verStr); err != nil {
			return fmt.Errorf("parse schema version %q: %w", verStr, err)
		}
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("schema version %d is newer than %d", version, currentSchemaVersion)
	}
	return s.SetSetting(context.Background(), "schema_version", strconv.Itoa(currentSchemaVersion))
}

// Setting returns the value stored under key, or "" if none.
func (s *Store) Setting(ctx context.Context, key string) (string, error) {
	var val string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM analytics_settings WHERE key = ?`, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return val, err
}

// SetSetting upserts a setting.
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analytics_settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// SaveView stores one page view.
func (s *Store) SaveView(ctx context.Context, v View) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO page_views (path, visitor_id, browser, os, device, referrer, bot, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Path, v.VisitorID, v.Browser, v.OS, v.Device, v.Referrer, v.Bot,
		v.Timestamp.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("analytics: save view: %w", err)
	}
	return nil
}

// Summary aggregates views at or after since. limit caps each top list.
func (s *Store) Summary(ctx context.Context, since time.Time, limit int) (Summary, error) {
	sum := Summary{Since: since}
	from := since.UTC().Format(timeLayout)

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(CASE WHEN bot = '' THEN 1 END),
			COUNT(DISTINCT CASE WHEN bot = '' THEN visitor_id END),
			COUNT(CASE WHEN bot != '' THEN 1 END)
		FROM page_views WHERE timestamp >= ?`, from).
		Scan(&sum.Views, &sum.Visitors, &sum.BotViews)
	if err != nil {
		return sum, fmt.Errorf("analytics: totals: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS n FROM page_views
		WHERE timestamp >= ? AND bot = ''
		GROUP BY path ORDER BY n DESC, path LIMIT ?`, from, limit)
	if err != nil {
		return sum, fmt.Errorf("analytics: top pages: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p PageStat
		if err := rows.Scan(&p.Path, &p.Views); err != nil {
			return sum, err
		}
		sum.TopPages = append(sum.TopPages, p)
	}
	if err := rows.Err(); err != nil {
		return sum, err
	}

	if sum.Referrers, err = s.dimension(ctx, "referrer", from, limit); err != nil {
		return sum, err
	}
	if sum.Browsers, err = s.dimension(ctx, "browser", from, limit); err != nil {
		return sum, err
	}
	return sum, nil
}

// dimension counts human views grouped by column, which must be a trusted
// column name.
func (s *Store) dimension(ctx context.Context, column, from string, limit int) ([]DimensionStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+column+`, COUNT(*) AS n FROM page_views
		WHERE timestamp >= ? AND bot = ''
		GROUP BY `+column+` ORDER BY n DESC, `+column+` LIMIT ?`, from, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics: %s stats: %w", column, err)
	}
	defer rows.Close()

	var out []DimensionStat
	for rows.Next() {
		var d DimensionStat
		if err := rows.Scan(&d.Name, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// DeleteBefore removes views older than t and reports how many went.
func (s *Store) DeleteBefore(ctx context.Context, t time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM page_views WHERE timestamp < ?`, t.UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("analytics: cleanup: %w", err)
	}
	return res.RowsAffected()
}
