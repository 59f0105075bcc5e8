package todos

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// PostgresRepository implements todo storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return collectTodos(rows)
}

func (r *PostgresRepository) GetForUser(ctx context.Context, id, userID string) (*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1 AND user_id = $2`
	return scanTodo(r.db.QueryRowContext(ctx, query, id, userID))
}

func (r *PostgresRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	query := `
		INSERT INTO todos (id, title, description, completed, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		todo.ID, todo.Title, todo.Description, todo.Completed, todo.UserID, todo.CreatedAt, todo.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return todo, nil
}

func (r *PostgresRepository) Update(ctx context.Context, todo *models.Todo) error {
	query := `
		UPDATE todos SET title = $1, description = $2, completed = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
	`
	res, err := r.db.ExecContext(ctx, query,
		todo.Title, todo.Description, todo.Completed, todo.UpdatedAt, todo.ID, todo.UserID)
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

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	query := `DELETE FROM todos WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affectedOne(res)
}

func (r *PostgresRepository) ToggleCompletion(ctx context.Context, id, userID string, at time.Time) (*models.Todo, error) {
	query := `
		UPDATE todos SET completed = NOT completed, updated_at = $1
		WHERE id = $2 AND user_id = $3
		RETURNING ` + todoColumns
	return scanTodo(r.db.QueryRowContext(ctx, query, at, id, userID))
}
