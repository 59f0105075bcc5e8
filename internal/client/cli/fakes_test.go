package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/api"
	"github.com/dmitrijs2005/todokeeper/internal/client/client"
	"github.com/dmitrijs2005/todokeeper/internal/client/config"
	"github.com/dmitrijs2005/todokeeper/internal/client/repositories/session"
)

type fakeAuth struct {
	signupErr  error
	signinErr  error
	pingErr    error
	restore    *session.Session
	restoreErr error

	gotEmail    string
	gotPassword string
	loggedOut   bool
	closed      bool
}

func (f *fakeAuth) Signup(ctx context.Context, email string, password []byte) error {
	f.gotEmail, f.gotPassword = email, string(password)
	return f.signupErr
}

func (f *fakeAuth) Signin(ctx context.Context, email string, password []byte) (*session.Session, error) {
	f.gotEmail, f.gotPassword = email, string(password)
	if f.signinErr != nil {
		return nil, f.signinErr
	}
	return &session.Session{Email: email, UserID: "u-1", AccessToken: "tok"}, nil
}

func (f *fakeAuth) Restore(ctx context.Context) (*session.Session, error) {
	return f.restore, f.restoreErr
}

func (f *fakeAuth) Logout(ctx context.Context) error { f.loggedOut = true; return nil }
func (f *fakeAuth) Ping(ctx context.Context) error   { return f.pingErr }
func (f *fakeAuth) Close(ctx context.Context) error  { f.closed = true; return nil }

type fakeTodos struct {
	list []*api.Todo
	todo *api.Todo
	err  error

	gotID          string
	gotTitle       string
	gotDescription string
	gotChanges     client.TodoChanges
}

func (f *fakeTodos) List(ctx context.Context) ([]*api.Todo, error) { return f.list, f.err }

func (f *fakeTodos) Get(ctx context.Context, id string) (*api.Todo, error) {
	f.gotID = id
	return f.todo, f.err
}

func (f *fakeTodos) Add(ctx context.Context, title, description string) (*api.Todo, error) {
	f.gotTitle, f.gotDescription = title, description
	return f.todo, f.err
}

func (f *fakeTodos) Edit(ctx context.Context, id string, ch client.TodoChanges) (*api.Todo, error) {
	f.gotID, f.gotChanges = id, ch
	return f.todo, f.err
}

func (f *fakeTodos) Toggle(ctx context.Context, id string) (*api.Todo, error) {
	f.gotID = id
	return f.todo, f.err
}

func (f *fakeTodos) Delete(ctx context.Context, id string) error {
	f.gotID = id
	return f.err
}

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func newTestApp(fa *fakeAuth, ft *fakeTodos, in *bufio.Reader) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &App{
		config:      cfg,
		authService: fa,
		todoService: ft,
		reader:      in,
		out:         &out,
		render:      newRenderer(true),
	}, &out
}
