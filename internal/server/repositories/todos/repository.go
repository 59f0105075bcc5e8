// Package todos persists todo items. Every statement that reads or mutates
// a single todo is scoped by both the todo id and the owning user id, so a
// row owned by somebody else is indistinguishable from a missing one.
package todos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// Repository is the todo store.
type Repository interface {
	// ListByUser returns the user's todos ordered by created_at, then id.
	ListByUser(ctx context.Context, userID string) ([]*models.Todo, error)
	// GetForUser returns common.ErrorNotFound unless the todo exists and is
	// owned by userID.
	GetForUser(ctx context.Context, id, userID string) (*models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	// Update writes the mutable columns of todo (title, description,
	// completed, updated_at) where id and user_id match.
	Update(ctx context.Context, todo *models.Todo) error
	// Delete reports whether a row owned by userID was removed.
	Delete(ctx context.Context, id, userID string) (bool, error)
	// ToggleCompletion flips completed in a single statement and returns
	// the updated row.
	ToggleCompletion(ctx context.Context, id, userID string, at time.Time) (*models.Todo, error)
}

const todoColumns = `id, title, description, completed, user_id, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(s scanner) (*models.Todo, error) {
	t := &models.Todo{}
	err := s.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func collectTodos(rows *sql.Rows) ([]*models.Todo, error) {
	defer rows.Close()

	result := make([]*models.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func affectedOne(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("unexpected rows affected: %d", n)
	}
}
