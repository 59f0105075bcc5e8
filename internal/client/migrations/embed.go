// Package migrations embeds the schema of the CLI's local SQLite store.
package migrations

import "embed"

//go:embed sqlite/*.sql
var Migrations embed.FS

const SQLiteDir = "sqlite"
