// Package database opens the planner's store. The backend is chosen from
// the connection string: a file path or sqlite:// URL gives local SQLite
// (pure Go driver), a postgres:// URL gives a pgx pool.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// Connection is an open handle to one of the supported backends.
type Connection struct {
	driver Driver
	sqlite *sql.DB
	pool   *pgxpool.Pool
}

// Open connects to the database named by url. An empty url opens the
// default local SQLite file.
func Open(ctx context.Context, url string) (*Connection, error) {
	switch DetectDriver(url) {
	case DriverSQLite:
		return openSQLite(ctx, url)
	case DriverPostgres:
		return openPostgres(ctx, url)
	default:
		return nil, fmt.Errorf("unsupported database url: %q", url)
	}
}

func openSQLite(ctx context.Context, url string) (*Connection, error) {
	path := strings.TrimPrefix(url, "sqlite://")
	if path == "" {
		path = DefaultSQLitePath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// WAL and a busy timeout keep the single-writer file usable when a
	// second command races the first.
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&"
	} else {
		dsn += "?"
	}
	dsn += "_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// SQLite doesn't support multiple writers, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &Connection{driver: DriverSQLite, sqlite: db}, nil
}

func openPostgres(ctx context.Context, url string) (*Connection, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create PostgreSQL pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL database: %w", err)
	}
	return &Connection{driver: DriverPostgres, pool: pool}, nil
}

// Driver returns the backend type of this connection.
func (c *Connection) Driver() Driver {
	return c.driver
}

// SQLite returns the underlying sql.DB; nil unless Driver is DriverSQLite.
func (c *Connection) SQLite() *sql.DB {
	return c.sqlite
}

// Pool returns the underlying pgx pool; nil unless Driver is DriverPostgres.
func (c *Connection) Pool() *pgxpool.Pool {
	return c.pool
}

// Close releases the connection's resources.
func (c *Connection) Close() error {
	if c.sqlite != nil {
		return c.sqlite.Close()
	}
	if c.pool != nil {
		c.pool.Close()
	}
	return nil
}

// DefaultSQLitePath returns the default local database location.
func DefaultSQLitePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".dayplan", "data.db")
}
