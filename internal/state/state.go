// Package state persists small settings and bookkeeping in SQLite.
package state

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "soundfeed"
	dbFileName = "soundfeed.db"
)

type Manager struct {
	db *sql.DB
}

// Open opens the store at the XDG data path.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the store at path; ":memory:" gives a throwaway store.
func OpenPath(path string) (*Manager, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One connection: SQLite serializes writers anyway, and an in-memory
	// database only exists on the connection that created it.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

// Get returns the value stored under key.
func (m *Manager) Get(key string) (string, bool, error) {
	var value string
	err := m.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (m *Manager) Set(key, value string) error {
	_, err := m.db.Exec(`
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now().Unix())
	return err
}

// Delete removes key. Deleting a missing key is not an error.
func (m *Manager) Delete(key string) error {
	_, err := m.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
