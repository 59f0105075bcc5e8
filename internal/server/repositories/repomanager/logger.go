package repomanager

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/pressly/goose/v3"
)

// migrationLogger adapts logging.Logger to goose.Logger.
type migrationLogger struct {
	ctx    context.Context
	logger logging.Logger
}

func (l migrationLogger) Printf(format string, v ...any) {
	l.logger.Info(l.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf does not return, same as the goose default.
func (l migrationLogger) Fatalf(format string, v ...any) {
	l.logger.Error(l.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
	os.Exit(1)
}

// SetMigrationLogger routes goose output through logger. goose keeps a
// single process-wide logger, so this affects every later RunMigrations.
func SetMigrationLogger(ctx context.Context, logger logging.Logger) {
	goose.SetLogger(migrationLogger{ctx: ctx, logger: logger.With("module", "migrations")})
}
