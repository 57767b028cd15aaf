// Package analytics records privacy-conscious visitor metrics and outbound
// link clicks in sqlite. IP addresses are never stored, only a salted hash.
package analytics

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// MemoryDSN keeps everything in process memory; nothing touches disk.
const MemoryDSN = ":memory:"

// Retention is how long visitor rows are kept.
const Retention = 365 * 24 * time.Hour

type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type LinkStat struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	Clicks    int64     `json:"clicks"`
}

type Stats struct {
	TotalVisitors    int64      `json:"total_visitors"`
	UniqueVisitors   int64      `json:"unique_visitors"`
	TotalLinks       int64      `json:"total_links"`
	TotalClicks      int64      `json:"total_clicks"`
	TopLinks         []LinkStat `json:"top_links"`
	RecentVisitors   []Visitor  `json:"recent_visitors"`
	VisitorsToday    int64      `json:"visitors_today"`
	VisitorsThisWeek int64      `json:"visitors_this_week"`
}

type Store struct {
	db  *sql.DB
	now func() time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	ts INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_ts ON visitors(ts);
CREATE TABLE IF NOT EXISTS links (
	link_key TEXT PRIMARY KEY,
	url TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	clicks INTEGER NOT NULL DEFAULT 0
);`

// Open opens (or creates) the store at dsn and applies the schema.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open analytics db")
	}
	// One connection: an in-memory database lives and dies with it, and
	// sqlite serialises writers anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create analytics schema")
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) RecordVisit(ctx context.Context, hashedIP, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, ts) VALUES (?, ?, ?, ?)`,
		hashedIP, userAgent, path, s.now().Unix())
	return errors.Wrap(err, "record visit")
}

// RecordClick counts one click on an outbound link, registering it first.
func (s *Store) RecordClick(ctx context.Context, key, url string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO links (link_key, url, created_at, clicks) VALUES (?, ?, ?, 1)
		ON CONFLICT(link_key) DO UPDATE SET clicks = clicks + 1, url = excluded.url`,
		key, url, s.now().Unix())
	return errors.Wrap(err, "record click")
}

// Cleanup removes visitor rows older than the retention period.
func (s *Store) Cleanup(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-Retention).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE ts < ?`, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "cleanup visitors")
	}
	return res.RowsAffected()
}

func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := s.now()
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location()).Unix()
	weekAgo := now.Add(-7 * 24 * time.Hour).Unix()

	counters := []struct {
		query string
		args  []any
		dst   *int64
	}{
		{"SELECT COUNT(*) FROM visitors", nil, &stats.TotalVisitors},
		{"SELECT COUNT(DISTINCT hashed_ip) FROM visitors", nil, &stats.UniqueVisitors},
		{"SELECT COUNT(*) FROM links", nil, &stats.TotalLinks},
		{"SELECT COALESCE(SUM(clicks), 0) FROM links", nil, &stats.TotalClicks},
		{"SELECT COUNT(*) FROM visitors WHERE ts >= ?", []any{midnight}, &stats.VisitorsToday},
		{"SELECT COUNT(*) FROM visitors WHERE ts >= ?", []any{weekAgo}, &stats.VisitorsThisWeek},
	}
	for _, c := range counters {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, errors.Wrapf(err, "stats: %s", c.query)
		}
	}

	var err error
	if stats.TopLinks, err = s.links(ctx, 10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.Visitors(ctx, 50); err != nil {
		return nil, err
	}
	return stats, nil
}

// Links returns every tracked link, most clicked first.
func (s *Store) Links(ctx context.Context) ([]LinkStat, error) {
	return s.links(ctx, -1)
}

func (s *Store) links(ctx context.Context, limit int) ([]LinkStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT link_key, url, created_at, clicks FROM links
		ORDER BY clicks DESC, created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query links")
	}
	defer rows.Close()

	var out []LinkStat
	for rows.Next() {
		var l LinkStat
		var created int64
		if err := rows.Scan(&l.Key, &l.URL, &created, &l.Clicks); err != nil {
			return nil, errors.Wrap(err, "scan link")
		}
		l.CreatedAt = time.Unix(created, 0).UTC()
		out = append(out, l)
	}
	return out, errors.Wrap(rows.Err(), "iterate links")
}

// Visitors returns the most recent visits.
func (s *Store) Visitors(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), ts FROM visitors
		ORDER BY ts DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query visitors")
	}
	defer rows.Close()

	var out []Visitor
	for rows.Next() {
		var v Visitor
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, errors.Wrap(err, "scan visitor")
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		out = append(out, v)
	}
	return out, errors.Wrap(rows.Err(), "iterate visitors")
}
