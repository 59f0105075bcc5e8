package todos

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
// Timestamps are written in UTC so that their text form sorts chronologically.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]*models.Todo, error) {
	query := `select ` + todoColumns + ` from todos where user_id = ? order by created_at asc, id asc`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return collectTodos(rows)
}

func (r *SQLiteRepository) GetForUser(ctx context.Context, id, userID string) (*models.Todo, error) {
	query := `select ` + todoColumns + ` from todos where id = ? and user_id = ?`
	return scanTodo(r.db.QueryRowContext(ctx, query, id, userID))
}

func (r *SQLiteRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	query := `insert into todos (id, title, description, completed, user_id, created_at, updated_at)
			values (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		todo.ID, todo.Title, todo.Description, todo.Completed, todo.UserID, todo.CreatedAt.UTC(), todo.UpdatedAt.UTC())
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return todo, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, todo *models.Todo) error {
	query := `update todos set title = ?, description = ?, completed = ?, updated_at = ?
			where id = ? and user_id = ?`
	res, err := r.db.ExecContext(ctx, query,
		todo.Title, todo.Description, todo.Completed, todo.UpdatedAt.UTC(), todo.ID, todo.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	ok, err := affectedOne(res)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	query := `delete from todos where id = ? and user_id = ?`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affectedOne(res)
}

func (r *SQLiteRepository) ToggleCompletion(ctx context.Context, id, userID string, at time.Time) (*models.Todo, error) {
	query := `update todos set completed = not completed, updated_at = ?
			where id = ? and user_id = ?
			returning ` + todoColumns
	return scanTodo(r.db.QueryRowContext(ctx, query, at.UTC(), id, userID))
}
