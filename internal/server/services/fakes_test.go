package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/config"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/todos"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/users"
)

// --- helpers ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "k",
		SigningAlgorithm:            "HS256",
		AccessTokenValidityDuration: time.Hour,
		PasswordHashScheme:          "sha256",
	}
}

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

// --- fake repositories ---

type fakeUsersRepo struct {
	byEmail map[string]*models.User

	getErr    error
	createErr error
	created   []*models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

type fakeTodosRepo struct {
	getOut *models.Todo
	getErr error

	listOut []*models.Todo
	listErr error

	createErr error
	updateErr error
	updated   *models.Todo

	deleteOut bool
	deleteErr error

	toggleOut *models.Todo
	toggleErr error
	toggleAt  time.Time

	calls int
}

func (f *fakeTodosRepo) ListByUser(ctx context.Context, userID string) ([]*models.Todo, error) {
	f.calls++
	return f.listOut, f.listErr
}

func (f *fakeTodosRepo) GetForUser(ctx context.Context, id, userID string) (*models.Todo, error) {
	f.calls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	cp := *f.getOut
	return &cp, nil
}

func (f *fakeTodosRepo) Create(ctx context.Context, t *models.Todo) (*models.Todo, error) {
	f.calls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return t, nil
}

func (f *fakeTodosRepo) Update(ctx context.Context, t *models.Todo) error {
	f.calls++
	f.updated = t
	return f.updateErr
}

func (f *fakeTodosRepo) Delete(ctx context.Context, id, userID string) (bool, error) {
	f.calls++
	return f.deleteOut, f.deleteErr
}

func (f *fakeTodosRepo) ToggleCompletion(ctx context.Context, id, userID string, at time.Time) (*models.Todo, error) {
	f.calls++
	f.toggleAt = at
	if f.toggleErr != nil {
		return nil, f.toggleErr
	}
	return f.toggleOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *fakeTodosRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository         { return m.u }
func (m *fakeRepoManager) Todos(db dbx.DBTX) todos.Repository         { return m.t }

