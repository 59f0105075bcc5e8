package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/api"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ts    = time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	alice = &models.User{ID: "u-1", Email: "alice@example.com", CreatedAt: ts}
)

func withUser(u *models.User) context.Context {
	return context.WithValue(context.Background(), userKey, u)
}

func sampleTodo() *models.Todo {
	return &models.Todo{ID: "t-1", Title: "read", UserID: "u-1", CreatedAt: ts, UpdatedAt: ts}
}

func TestPing(t *testing.T) {
	s := newTestServer(&fakeAuth{}, &fakeTodos{})
	resp, err := s.Ping(context.Background(), &api.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}

func TestSignup(t *testing.T) {
	s := newTestServer(&fakeAuth{signupResp: alice}, &fakeTodos{})

	resp, err := s.Signup(context.Background(), &api.SignupRequest{Email: "alice@example.com", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, &api.SignupResponse{ID: "u-1", Email: "alice@example.com", CreatedAt: ts}, resp)
}

func TestSignin(t *testing.T) {
	s := newTestServer(&fakeAuth{signinResp: &services.SigninResult{AccessToken: "tok", TokenType: "bearer", UserID: "u-1"}}, &fakeTodos{})

	resp, err := s.Signin(context.Background(), &api.SigninRequest{Email: "alice@example.com", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "u-1", resp.UserID)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err      error
		wantCode codes.Code
		wantMsg  string
	}{
		{fmt.Errorf("%w: title must not be empty", common.ErrorValidation), codes.InvalidArgument, "validation error: title must not be empty"},
		{common.ErrDuplicateEmail, codes.AlreadyExists, "email already registered"},
		{common.ErrInvalidCredentials, codes.Unauthenticated, "incorrect email or password"},
		{common.ErrUnauthenticated, codes.Unauthenticated, "could not validate credentials"},
		{common.ErrorNotFound, codes.NotFound, "todo not found"},
		{fmt.Errorf("%w: %w", common.ErrorInternal, errors.New("secret db detail")), codes.Internal, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode.String()+" "+tt.wantMsg, func(t *testing.T) {
			s := newTestServer(&fakeAuth{signupErr: tt.err}, &fakeTodos{})
			_, err := s.Signup(context.Background(), &api.SignupRequest{})
			st := status.Convert(err)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}

func TestTodoHandlers_RequireUser(t *testing.T) {
	s := newTestServer(&fakeAuth{}, &fakeTodos{})
	ctx := context.Background()

	_, err := s.ListTodos(ctx, &api.ListTodosRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = s.GetTodo(ctx, &api.TodoIDRequest{ID: "t-1"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = s.CreateTodo(ctx, &api.CreateTodoRequest{Title: "x"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = s.UpdateTodo(ctx, &api.UpdateTodoRequest{ID: "t-1"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = s.DeleteTodo(ctx, &api.TodoIDRequest{ID: "t-1"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = s.ToggleTodo(ctx, &api.TodoIDRequest{ID: "t-1"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestListTodos(t *testing.T) {
	ft := &fakeTodos{listResp: []*models.Todo{sampleTodo()}}
	s := newTestServer(&fakeAuth{}, ft)

	resp, err := s.ListTodos(withUser(alice), &api.ListTodosRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Todos, 1)
	assert.Equal(t, "t-1", resp.Todos[0].ID)
	assert.Equal(t, "u-1", ft.gotUserID)

	empty, err := newTestServer(&fakeAuth{}, &fakeTodos{}).ListTodos(withUser(alice), &api.ListTodosRequest{})
	require.NoError(t, err)
	assert.NotNil(t, empty.Todos)
}

func TestCreateTodo_OwnerIsCaller(t *testing.T) {
	ft := &fakeTodos{todo: sampleTodo()}
	s := newTestServer(&fakeAuth{}, ft)

	desc := "chapter 1"
	_, err := s.CreateTodo(withUser(alice), &api.CreateTodoRequest{Title: "read", Description: &desc, Completed: true})
	require.NoError(t, err)
	assert.Equal(t, "u-1", ft.gotUserID)
	assert.Equal(t, "read", ft.gotNew.Title)
	assert.Equal(t, &desc, ft.gotNew.Description)
	assert.True(t, ft.gotNew.Completed)
}

func TestUpdateTodo_Patch(t *testing.T) {
	title := "new"
	done := true
	desc := "d"

	tests := []struct {
		name string
		req  *api.UpdateTodoRequest
		want models.TodoPatch
	}{
		{name: "nothing", req: &api.UpdateTodoRequest{ID: "t-1"}, want: models.TodoPatch{}},
		{name: "title and completed", req: &api.UpdateTodoRequest{ID: "t-1", Title: &title, Completed: &done},
			want: models.TodoPatch{Title: models.Some("new"), Completed: models.Some(true)}},
		{name: "description", req: &api.UpdateTodoRequest{ID: "t-1", Description: &desc},
			want: models.TodoPatch{Description: models.Some(&desc)}},
		{name: "clear wins", req: &api.UpdateTodoRequest{ID: "t-1", Description: &desc, ClearDescription: true},
			want: models.TodoPatch{Description: models.Optional[*string]{Set: true, Null: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := &fakeTodos{todo: sampleTodo()}
			s := newTestServer(&fakeAuth{}, ft)

			_, err := s.UpdateTodo(withUser(alice), tt.req)
			require.NoError(t, err)
			assert.Equal(t, "t-1", ft.gotID)
			assert.Equal(t, tt.want, ft.gotPatch)
		})
	}
}

func TestDeleteTodo_FalseIsNotAnError(t *testing.T) {
	s := newTestServer(&fakeAuth{}, &fakeTodos{deleted: false})

	resp, err := s.DeleteTodo(withUser(alice), &api.TodoIDRequest{ID: "t-1"})
	require.NoError(t, err)
	assert.False(t, resp.Deleted)
}

func TestGetAndToggle_NotFound(t *testing.T) {
	s := newTestServer(&fakeAuth{}, &fakeTodos{err: common.ErrorNotFound})

	_, err := s.GetTodo(withUser(alice), &api.TodoIDRequest{ID: "t-9"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = s.ToggleTodo(withUser(alice), &api.TodoIDRequest{ID: "t-9"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
