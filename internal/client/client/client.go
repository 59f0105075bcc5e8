package client

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/api"
)

// TodoChanges describes an edit. Nil fields are left untouched;
// ClearDescription removes the description.
type TodoChanges struct {
	Title            *string
	Description      *string
	ClearDescription bool
	Completed        *bool
}

type Client interface {
	Close() error
	SetAccessToken(token string)
	Ping(ctx context.Context) error
	Signup(ctx context.Context, email, password string) (*api.SignupResponse, error)
	Signin(ctx context.Context, email, password string) (*api.SigninResponse, error)
	ListTodos(ctx context.Context) ([]*api.Todo, error)
	GetTodo(ctx context.Context, id string) (*api.Todo, error)
	CreateTodo(ctx context.Context, title string, description *string) (*api.Todo, error)
	UpdateTodo(ctx context.Context, id string, ch TodoChanges) (*api.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
	ToggleTodo(ctx context.Context, id string) (*api.Todo, error)
}
