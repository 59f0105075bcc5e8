package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/todokeeper/internal/api"
	"github.com/dmitrijs2005/todokeeper/internal/client/client"
	"github.com/dmitrijs2005/todokeeper/internal/client/repositories/session"
)

var errBoom = errors.New("boom")

type fakeClient struct {
	token string

	signinResp *api.SigninResponse
	err        error

	gotTitle       string
	gotDescription *string
	gotChanges     client.TodoChanges
	hadDeadline    bool
	closed         bool
}

func (f *fakeClient) note(ctx context.Context) { _, f.hadDeadline = ctx.Deadline() }

func (f *fakeClient) Close() error                { f.closed = true; return nil }
func (f *fakeClient) SetAccessToken(token string) { f.token = token }

func (f *fakeClient) Ping(ctx context.Context) error { f.note(ctx); return f.err }

func (f *fakeClient) Signup(ctx context.Context, email, password string) (*api.SignupResponse, error) {
	f.note(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return &api.SignupResponse{ID: "u-1", Email: email}, nil
}

func (f *fakeClient) Signin(ctx context.Context, email, password string) (*api.SigninResponse, error) {
	f.note(ctx)
	if f.err != nil {
		return nil, f.err
	}
	f.token = f.signinResp.AccessToken
	return f.signinResp, nil
}

func (f *fakeClient) ListTodos(ctx context.Context) ([]*api.Todo, error) {
	f.note(ctx)
	return []*api.Todo{{ID: "t-1"}}, f.err
}

func (f *fakeClient) GetTodo(ctx context.Context, id string) (*api.Todo, error) {
	f.note(ctx)
	return &api.Todo{ID: id}, f.err
}

func (f *fakeClient) CreateTodo(ctx context.Context, title string, description *string) (*api.Todo, error) {
	f.note(ctx)
	f.gotTitle, f.gotDescription = title, description
	return &api.Todo{ID: "t-2", Title: title}, f.err
}

func (f *fakeClient) UpdateTodo(ctx context.Context, id string, ch client.TodoChanges) (*api.Todo, error) {
	f.note(ctx)
	f.gotChanges = ch
	return &api.Todo{ID: id}, f.err
}

func (f *fakeClient) DeleteTodo(ctx context.Context, id string) error { f.note(ctx); return f.err }

func (f *fakeClient) ToggleTodo(ctx context.Context, id string) (*api.Todo, error) {
	f.note(ctx)
	return &api.Todo{ID: id, Completed: true}, f.err
}

type fakeSessions struct {
	stored  *session.Session
	saveErr error
	loadErr error
}

func (f *fakeSessions) Load(ctx context.Context) (*session.Session, error) {
	return f.stored, f.loadErr
}

func (f *fakeSessions) Save(ctx context.Context, s session.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored = &s
	return nil
}

func (f *fakeSessions) Clear(ctx context.Context) error {
	f.stored = nil
	return nil
}
