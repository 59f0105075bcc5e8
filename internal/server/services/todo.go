package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// MaxTitleLength matches the width of the title column.
const MaxTitleLength = 255

// TodoService implements the ownership-scoped todo operations. Every method
// takes the authenticated user id; todos owned by anyone else behave as if
// they did not exist.
type TodoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
	newID       func() string
}

func NewTodoService(db *sql.DB, m repomanager.RepositoryManager) *TodoService {
	return &TodoService{
		db:          db,
		repomanager: m,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// List returns the user's todos ordered by creation time, then id.
func (s *TodoService) List(ctx context.Context, userID string) ([]*models.Todo, error) {
	todos, err := s.repomanager.Todos(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, domainError(err)
	}
	return todos, nil
}

func (s *TodoService) Get(ctx context.Context, id, userID string) (*models.Todo, error) {
	if !validTodoID(id) {
		return nil, common.ErrorNotFound
	}
	todo, err := s.repomanager.Todos(s.db).GetForUser(ctx, id, userID)
	if err != nil {
		return nil, domainError(err)
	}
	return todo, nil
}

// Create stores a new todo owned by userID.
func (s *TodoService) Create(ctx context.Context, userID string, in models.NewTodo) (*models.Todo, error) {
	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	todo := &models.Todo{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repomanager.Todos(s.db).Create(ctx, todo)
	if err != nil {
		return nil, domainError(err)
	}
	return created, nil
}

// Update applies the set fields of patch. The ownership check and the write
// happen in one transaction. An empty patch returns the todo unchanged.
func (s *TodoService) Update(ctx context.Context, id, userID string, patch models.TodoPatch) (*models.Todo, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	if !validTodoID(id) {
		return nil, common.ErrorNotFound
	}

	var result *models.Todo
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Todos(tx)

		todo, err := repo.GetForUser(ctx, id, userID)
		if err != nil {
			return err
		}
		if patch.Empty() {
			result = todo
			return nil
		}

		patch.Apply(todo)
		todo.UpdatedAt = s.now().UTC()
		if err := repo.Update(ctx, todo); err != nil {
			return err
		}
		result = todo
		return nil
	})
	if err != nil {
		return nil, domainError(err)
	}
	return result, nil
}

// Delete removes the todo and reports whether anything was removed. A todo
// that is missing or owned by someone else yields false, not an error.
func (s *TodoService) Delete(ctx context.Context, id, userID string) (bool, error) {
	if !validTodoID(id) {
		return false, nil
	}
	var deleted bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Todos(tx)

		if _, err := repo.GetForUser(ctx, id, userID); err != nil {
			return err
		}
		ok, err := repo.Delete(ctx, id, userID)
		deleted = ok
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, domainError(err)
	}
	return deleted, nil
}

// Toggle flips the completed flag.
func (s *TodoService) Toggle(ctx context.Context, id, userID string) (*models.Todo, error) {
	if !validTodoID(id) {
		return nil, common.ErrorNotFound
	}
	var result *models.Todo
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		todo, err := s.repomanager.Todos(tx).ToggleCompletion(ctx, id, userID, s.now().UTC())
		result = todo
		return err
	})
	if err != nil {
		return nil, domainError(err)
	}
	return result, nil
}

// validTodoID reports whether id can name a stored todo. Ids are uuids, and
// the postgres id column rejects anything else with an error instead of
// matching no row.
func validTodoID(id string) bool {
	return uuid.Validate(id) == nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title must not be empty", common.ErrorValidation)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", common.ErrorValidation, MaxTitleLength)
	}
	return nil
}

func validatePatch(p models.TodoPatch) error {
	if p.Title.Set {
		if p.Title.Null {
			return fmt.Errorf("%w: title must not be null", common.ErrorValidation)
		}
		if err := validateTitle(p.Title.Value); err != nil {
			return err
		}
	}
	if p.Completed.Set && p.Completed.Null {
		return fmt.Errorf("%w: completed must not be null", common.ErrorValidation)
	}
	return nil
}
