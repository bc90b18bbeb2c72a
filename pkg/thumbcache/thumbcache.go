// Package thumbcache stores rendered thumbnails in a sqlite database so the
// grid does not decode every source image on each redraw.
package thumbcache

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Key identifies one rendering of a source file. A changed ModTime or Size
// makes the stored entry stale.
type Key struct {
	Path    string
	ModTime int64
	Size    int64
	Width   int
	Height  int
}

type Cache struct {
	db *sql.DB
}

// sqlite reads the path of a file: URI up to the first ? or #, and decodes %HH in it.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

func dsn(path string) string {
	return "file:" + uriPathEscaper.Replace(path) + "?_busy_timeout=10000"
}

// Open opens (creating if needed) the cache database at path. ":memory:" works for tests.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("error opening thumbnail cache: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to thumbnail cache: %w", err)
	}
	if err := setupTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

func setupTables(db *sql.DB) error {
	tables := []string{
		"CREATE TABLE IF NOT EXISTS `Thumbnail`(`path` VARCHAR(1024) NOT NULL, `width` INTEGER NOT NULL, `height` INTEGER NOT NULL, `modTime` INTEGER NOT NULL, `size` INTEGER NOT NULL, `png` BLOB NOT NULL, PRIMARY KEY (`path`, `width`, `height`));",
	}
	for _, table := range tables {
		if _, err := db.Exec(table); err != nil {
			return fmt.Errorf("error creating table: %w", err)
		}
	}
	return nil
}

// Get returns the encoded thumbnail stored for key, or nil when there is no fresh entry.
func (c *Cache) Get(key Key) ([]byte, error) {
	var (
		modTime, size int64
		data          []byte
	)
	err := c.db.QueryRow(
		"SELECT modTime, size, png FROM Thumbnail WHERE path = ? AND width = ? AND height = ?",
		key.Path, key.Width, key.Height,
	).Scan(&modTime, &size, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading thumbnail: %w", err)
	}
	if modTime != key.ModTime || size != key.Size {
		return nil, nil
	}
	return data, nil
}

// Put stores data for key, replacing any stale entry for the same path and size.
func (c *Cache) Put(key Key, data []byte) error {
	_, err := c.db.Exec(
		"INSERT OR REPLACE INTO Thumbnail (path, width, height, modTime, size, png) VALUES (?, ?, ?, ?, ?, ?)",
		key.Path, key.Width, key.Height, key.ModTime, key.Size, data,
	)
	if err != nil {
		return fmt.Errorf("error storing thumbnail: %w", err)
	}
	return nil
}

// Count returns the number of stored thumbnails.
func (c *Cache) Count() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM Thumbnail").Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting thumbnails: %w", err)
	}
	return n, nil
}

// Vacuum reclaims the space left by replaced entries. Run it on shutdown.
func (c *Cache) Vacuum() error {
	if _, err := c.db.Exec("VACUUM"); err != nil {
		return fmt.Errorf("error vacuuming thumbnail cache: %w", err)
	}
	return nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}
