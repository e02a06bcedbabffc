package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/asante/codeweave/ent"
	"github.com/asante/codeweave/ent/record"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// SQLiteStore is a Store backed by a local SQLite database via ent.
type SQLiteStore struct {
	db     *sql.DB
	client *ent.Client
}

// Open creates a SQLiteStore connected to the database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &SQLiteStore{db: db, client: client}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.client.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	r, err := s.client.Record.Query().
		Where(record.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return r.Value, nil
}

func (s *SQLiteStore) Put(ctx context.Context, key string, value []byte) error {
	err := s.client.Record.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(record.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.Record.Delete().
		Where(record.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	q := s.client.Record.Query()
	if prefix != "" {
		q = q.Where(record.KeyHasPrefix(prefix))
	}
	keys, err := q.Order(ent.Asc(record.FieldKey)).
		Select(record.FieldKey).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keys %q: %w", prefix, err)
	}
	return keys, nil
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. CODEWEAVE_DB environment variable
// 2. $XDG_DATA_HOME/codeweave/codeweave.db
// 3. ~/.local/share/codeweave/codeweave.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("CODEWEAVE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "codeweave", "codeweave.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
