package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/client/migrations"
	"github.com/dmitrijs2005/todokeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/todokeeper/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	Session session.Repository
}

// RunMigrations applies the embedded session schema. goose output is
// discarded so it does not interleave with the REPL.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, migrations.SQLiteDir)
}

// InitDatabase opens (creating if needed) the local SQLite store at path
// and brings its schema up to date.
func InitDatabase(ctx context.Context, path string) (*sql.DB, *Repositories, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, err
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return db, &Repositories{Session: session.NewSQLiteRepository(db)}, nil
}
