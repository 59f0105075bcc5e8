package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Open connects to the database named by dsn and returns the matching
// RepositoryManager.
//
//	postgres://... or postgresql://...   PostgreSQL through pgx
//	sqlite:<path> or file:<path>          SQLite through modernc.org/sqlite
//
// The connection is verified with a ping bounded by timeout.
func Open(ctx context.Context, dsn string, timeout time.Duration) (*sql.DB, RepositoryManager, error) {
	driver, source, err := resolveDSN(dsn)
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", driver, err)
	}

	var m RepositoryManager
	switch driver {
	case "pgx":
		m, err = NewPostgresRepositoryManager(db)
	default:
		// SQLite allows one writer; a single connection also keeps
		// in-memory databases alive and shared.
		db.SetMaxOpenConns(1)
		m, err = NewSQLiteRepositoryManager(db)
	}
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return db, m, nil
}

// resolveDSN maps a DSN to a database/sql driver name and data source.
func resolveDSN(dsn string) (driver, source string, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "pgx", dsn, nil
	case strings.HasPrefix(dsn, "sqlite:"):
		return "sqlite", sqliteSource(strings.TrimPrefix(dsn, "sqlite:")), nil
	case strings.HasPrefix(dsn, "file:"):
		return "sqlite", sqliteSource(dsn), nil
	default:
		scheme, _, _ := strings.Cut(dsn, ":")
		return "", "", fmt.Errorf("unsupported database DSN scheme %q", scheme)
	}
}

// sqliteSource adds the connection parameters the repositories rely on:
// text timestamps in a sortable layout and enforced foreign keys.
func sqliteSource(path string) string {
	params := []string{}
	if !strings.Contains(path, "_time_format=") {
		params = append(params, "_time_format=sqlite")
	}
	if !strings.Contains(path, "foreign_keys") {
		params = append(params, "_pragma=foreign_keys(1)")
	}
	if len(params) == 0 {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(params, "&")
}
