package portfolio

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// timeLayout is fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps a SQLite database holding contact form submissions.
type Store struct {
	db *sql.DB
}

var _ Submitter = (*Store)(nil)

// sqlitePragmas: WAL lets readers run beside a writer, and writers wait on
// the busy timeout instead of failing with SQLITE_BUSY.
const sqlitePragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

// NewStore opens (or creates) the SQLite database at path, ensures its
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// The pragmas go in the DSN so every pooled connection gets them.
	db, err := sql.Open("sqlite", path+sqlitePragmas)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// DB exposes the handle so other tables can share the file.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS contact_messages (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    message TEXT NOT NULL,
    remote_ip TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS contact_messages_created_at ON contact_messages (created_at);
`)
	return err
}

// Submit stores m, assigning an ID and timestamp when they are unset.
func (s *Store) Submit(ctx context.Context, m ContactMessage) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, message, remote_ip, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Message, m.RemoteIP, m.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("portfolio: save message: %w", err)
	}
	return nil
}

// ListMessages returns up to limit messages, newest first. A limit of zero
// or less returns all of them.
func (s *Store) ListMessages(ctx context.Context, limit int) ([]ContactMessage, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, message, remote_ip, created_at FROM contact_messages ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []ContactMessage
	for rows.Next() {
		var m ContactMessage
		var created string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.RemoteIP, &created); err != nil {
			return nil, err
		}
		m.CreatedAt, err = time.Parse(timeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("portfolio: message %s: bad created_at %q: %w", m.ID, created, err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// GetMessage returns a single message by ID.
func (s *Store) GetMessage(ctx context.Context, id string) (ContactMessage, error) {
	var m ContactMessage
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, message, remote_ip, created_at FROM contact_messages WHERE id = ?`, id).
		Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.RemoteIP, &created)
	if err == sql.ErrNoRows {
		return ContactMessage{}, ErrNotFound
	}
	if err != nil {
		return ContactMessage{}, err
	}
	m.CreatedAt, err = time.Parse(timeLayout, created)
	if err != nil {
		return ContactMessage{}, fmt.Errorf("portfolio: message %s: bad created_at %q: %w", m.ID, created, err)
	}
	return m, nil
}

// DeleteMessage removes a message by ID.
func (s *Store) DeleteMessage(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountMessages returns the number of stored messages.
func (s *Store) CountMessages(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n)
	return n, err
}
