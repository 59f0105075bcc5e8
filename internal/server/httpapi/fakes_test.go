package httpapi

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/services"
)

type fakeAuth struct {
	signupResp *models.User
	signupErr  error

	signinResp *services.SigninResult
	signinErr  error

	tokens  map[string]*models.User
	authErr error

	gotEmail, gotPassword string
}

func (f *fakeAuth) Signup(ctx context.Context, email, password string) (*models.User, error) {
	f.gotEmail, f.gotPassword = email, password
	return f.signupResp, f.signupErr
}

func (f *fakeAuth) Signin(ctx context.Context, email, password string) (*services.SigninResult, error) {
	f.gotEmail, f.gotPassword = email, password
	return f.signinResp, f.signinErr
}

func (f *fakeAuth) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	if u, ok := f.tokens[token]; ok {
		return u, nil
	}
	return nil, common.ErrUnauthenticated
}

type fakeTodos struct {
	listResp []*models.Todo
	todo     *models.Todo
	deleted  bool
	err      error

	calls     int
	gotUserID string
	gotID     string
	gotNew    models.NewTodo
	gotPatch  models.TodoPatch
}

func (f *fakeTodos) List(ctx context.Context, userID string) ([]*models.Todo, error) {
	f.calls++
	f.gotUserID = userID
	return f.listResp, f.err
}

func (f *fakeTodos) Get(ctx context.Context, id, userID string) (*models.Todo, error) {
	f.calls++
	f.gotID, f.gotUserID = id, userID
	return f.todo, f.err
}

func (f *fakeTodos) Create(ctx context.Context, userID string, in models.NewTodo) (*models.Todo, error) {
	f.calls++
	f.gotUserID, f.gotNew = userID, in
	return f.todo, f.err
}

func (f *fakeTodos) Update(ctx context.Context, id, userID string, patch models.TodoPatch) (*models.Todo, error) {
	f.calls++
	f.gotID, f.gotUserID, f.gotPatch = id, userID, patch
	return f.todo, f.err
}

func (f *fakeTodos) Delete(ctx context.Context, id, userID string) (bool, error) {
	f.calls++
	f.gotID, f.gotUserID = id, userID
	return f.deleted, f.err
}

func (f *fakeTodos) Toggle(ctx context.Context, id, userID string) (*models.Todo, error) {
	f.calls++
	f.gotID, f.gotUserID = id, userID
	return f.todo, f.err
}
