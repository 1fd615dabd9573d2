package crashreport

import (
	"context"
	"database/sql"
	"strconv"
	"sync"
	"time"

	// Pure-Go SQLite driver for database/sql.
	_ "github.com/glebarez/sqlite"

	"github.com/wippyai/cef-bridge/errors"
)

// Report is one persisted snapshot of crash keys.
type Report struct {
	ID          int64
	ProcessType string
	CreatedAt   time.Time
	Keys        map[string]string
}

// Store persists crash key snapshots.
type Store interface {
	Save(ctx context.Context, rep *Report) (int64, error)
	Load(ctx context.Context, id int64) (*Report, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	// Prune deletes reports created before the given time and returns how
	// many were removed.
	Prune(ctx context.Context, before time.Time) (int, error)
	Close() error
}

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	process_type TEXT    NOT NULL,
	created_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS reports_created_at ON reports (created_at);
CREATE TABLE IF NOT EXISTS crash_keys (
	report_id INTEGER NOT NULL,
	name      TEXT    NOT NULL,
	value     TEXT    NOT NULL,
	PRIMARY KEY (report_id, name)
);`

// SQLiteStore is a Store backed by a SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// OpenSQLiteStore opens or creates the database at path. ":memory:" gives
// a private in-memory database.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseStorage, errors.KindInvalidInput, err, "open crash store")
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(errors.PhaseStorage, errors.KindInvalidInput, err, "create crash store schema")
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, rep *Report) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, errors.Closed(errors.PhaseStorage, "crash store")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, storageError(err, "begin save")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO reports (process_type, created_at) VALUES (?, ?)",
		rep.ProcessType, rep.CreatedAt.UnixNano())
	if err != nil {
		return 0, storageError(err, "insert report")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageError(err, "report id")
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO crash_keys (report_id, name, value) VALUES (?, ?, ?)")
	if err != nil {
		return 0, storageError(err, "prepare key insert")
	}
	defer stmt.Close()
	for name, value := range rep.Keys {
		if _, err := stmt.ExecContext(ctx, id, name, value); err != nil {
			return 0, storageError(err, "insert crash key")
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, storageError(err, "commit report")
	}
	rep.ID = id
	return id, nil
}

func (s *SQLiteStore) Load(ctx context.Context, id int64) (*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, errors.Closed(errors.PhaseStorage, "crash store")
	}

	rep := &Report{ID: id, Keys: make(map[string]string)}
	var created int64
	err := s.db.QueryRowContext(ctx,
		"SELECT process_type, created_at FROM reports WHERE id = ?", id).
		Scan(&rep.ProcessType, &created)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound(errors.PhaseStorage, "crash report", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, storageError(err, "load report")
	}
	rep.CreatedAt = time.Unix(0, created)

	rows, err := s.db.QueryContext(ctx, "SELECT name, value FROM crash_keys WHERE report_id = ?", id)
	if err != nil {
		return nil, storageError(err, "load crash keys")
	}
	defer rows.Close()
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, storageError(err, "scan crash key")
		}
		rep.Keys[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "load crash keys")
	}
	return rep, nil
}

func (s *SQLiteStore) CountSince(ctx context.Context, since time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, errors.Closed(errors.PhaseStorage, "crash store")
	}

	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reports WHERE created_at >= ?", since.UnixNano()).Scan(&n)
	if err != nil {
		return 0, storageError(err, "count reports")
	}
	return n, nil
}

func (s *SQLiteStore) Prune(ctx context.Context, before time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, errors.Closed(errors.PhaseStorage, "crash store")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, storageError(err, "begin prune")
	}
	defer tx.Rollback()

	cutoff := before.UnixNano()
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM crash_keys WHERE report_id IN (SELECT id FROM reports WHERE created_at < ?)", cutoff); err != nil {
		return 0, storageError(err, "prune crash keys")
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM reports WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, storageError(err, "prune reports")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageError(err, "prune reports")
	}
	if err := tx.Commit(); err != nil {
		return 0, storageError(err, "commit prune")
	}
	return int(n), nil
}

// Close closes the database. Further calls fail with KindClosed.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

func storageError(err error, what string) error {
	return errors.Wrap(errors.PhaseStorage, errors.KindInvalidInput, err, what)
}
