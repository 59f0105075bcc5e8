package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/api"
	"github.com/dmitrijs2005/todokeeper/internal/client/client"
)

type TodoService interface {
	List(ctx context.Context) ([]*api.Todo, error)
	Get(ctx context.Context, id string) (*api.Todo, error)
	Add(ctx context.Context, title, description string) (*api.Todo, error)
	Edit(ctx context.Context, id string, ch client.TodoChanges) (*api.Todo, error)
	Toggle(ctx context.Context, id string) (*api.Todo, error)
	Delete(ctx context.Context, id string) error
}

type todoService struct {
	client  client.Client
	timeout time.Duration
}

func NewTodoService(c client.Client, timeout time.Duration) TodoService {
	return &todoService{client: c, timeout: timeout}
}

func (s *todoService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *todoService) List(ctx context.Context) ([]*api.Todo, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.client.ListTodos(ctx)
}

func (s *todoService) Get(ctx context.Context, id string) (*api.Todo, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.client.GetTodo(ctx, id)
}

// Add creates a todo. An empty description is sent as absent.
func (s *todoService) Add(ctx context.Context, title, description string) (*api.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", client.ErrInvalidArgument)
	}

	var desc *string
	if d := strings.TrimSpace(description); d != "" {
		desc = &d
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.client.CreateTodo(ctx, title, desc)
}

func (s *todoService) Edit(ctx context.Context, id string, ch client.TodoChanges) (*api.Todo, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.client.UpdateTodo(ctx, id, ch)
}

func (s *todoService) Toggle(ctx context.Context, id string) (*api.Todo, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.client.ToggleTodo(ctx, id)
}

func (s *todoService) Delete(ctx context.Context, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.client.DeleteTodo(ctx, id)
}
