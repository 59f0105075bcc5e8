// Package session persists the signed-in CLI session between runs.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/dbx"
)

const (
	keyEmail       = "email"
	keyUserID      = "user_id"
	keyAccessToken = "access_token"
)

// Session is what the CLI remembers after a successful signin.
type Session struct {
	Email       string
	UserID      string
	AccessToken string
}

type Repository interface {
	// Load returns nil, nil when no session is stored.
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (*Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM session`)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate session rows: %w", err)
	}

	if values[keyAccessToken] == "" {
		return nil, nil
	}
	return &Session{
		Email:       values[keyEmail],
		UserID:      values[keyUserID],
		AccessToken: values[keyAccessToken],
	}, nil
}

// Save replaces the stored session atomically.
func (r *SQLiteRepository) Save(ctx context.Context, s Session) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session`); err != nil {
			return fmt.Errorf("failed to reset session: %w", err)
		}
		for k, v := range map[string]string{keyEmail: s.Email, keyUserID: s.UserID, keyAccessToken: s.AccessToken} {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO session (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value
			`, k, v); err != nil {
				return fmt.Errorf("failed to save session[%s]: %w", k, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
