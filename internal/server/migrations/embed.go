// Package migrations embeds the initial database schema, one directory per
// SQL dialect, for goose to apply at server start.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

// Directories inside Migrations, one per supported dialect.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)
