package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/todokeeper/internal/api"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {

	return &api.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) Signup(ctx context.Context, req *api.SignupRequest) (*api.SignupResponse, error) {

	s.logger.Info(ctx, "Signup request")

	user, err := s.users.Signup(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}

	s.logger.Info(ctx, "Signed up", "user_id", user.ID)
	return &api.SignupResponse{ID: user.ID, Email: user.Email, CreatedAt: user.CreatedAt}, nil

}

func (s *GRPCServer) Signin(ctx context.Context, req *api.SigninRequest) (*api.SigninResponse, error) {

	res, err := s.users.Signin(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}

	return &api.SigninResponse{AccessToken: res.AccessToken, TokenType: res.TokenType, UserID: res.UserID}, nil

}

func (s *GRPCServer) ListTodos(ctx context.Context, req *api.ListTodosRequest) (*api.ListTodosResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	todos, err := s.todos.List(ctx, user.ID)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}

	out := make([]*api.Todo, 0, len(todos))
	for _, t := range todos {
		out = append(out, toAPITodo(t))
	}
	return &api.ListTodosResponse{Todos: out}, nil
}

func (s *GRPCServer) GetTodo(ctx context.Context, req *api.TodoIDRequest) (*api.Todo, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	todo, err := s.todos.Get(ctx, req.ID, user.ID)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return toAPITodo(todo), nil
}

func (s *GRPCServer) CreateTodo(ctx context.Context, req *api.CreateTodoRequest) (*api.Todo, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	todo, err := s.todos.Create(ctx, user.ID, models.NewTodo{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return toAPITodo(todo), nil
}

func (s *GRPCServer) UpdateTodo(ctx context.Context, req *api.UpdateTodoRequest) (*api.Todo, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	todo, err := s.todos.Update(ctx, req.ID, user.ID, toPatch(req))
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return toAPITodo(todo), nil
}

func (s *GRPCServer) DeleteTodo(ctx context.Context, req *api.TodoIDRequest) (*api.DeleteTodoResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	deleted, err := s.todos.Delete(ctx, req.ID, user.ID)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &api.DeleteTodoResponse{Deleted: deleted}, nil
}

func (s *GRPCServer) ToggleTodo(ctx context.Context, req *api.TodoIDRequest) (*api.Todo, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	todo, err := s.todos.Toggle(ctx, req.ID, user.ID)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return toAPITodo(todo), nil
}

func currentUser(ctx context.Context) (*models.User, error) {
	user, ok := UserFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "could not validate credentials")
	}
	return user, nil
}

// statusError maps service errors to gRPC statuses. Internal errors are
// logged with their cause and reported without it.
func (s *GRPCServer) statusError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrDuplicateEmail):
		return status.Error(codes.AlreadyExists, "email already registered")
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "incorrect email or password")
	case errors.Is(err, common.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "could not validate credentials")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "todo not found")
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func toAPITodo(t *models.Todo) *api.Todo {
	return &api.Todo{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toPatch(req *api.UpdateTodoRequest) models.TodoPatch {
	var p models.TodoPatch
	if req.Title != nil {
		p.Title = models.Some(*req.Title)
	}
	switch {
	case req.ClearDescription:
		p.Description = models.Optional[*string]{Set: true, Null: true}
	case req.Description != nil:
		p.Description = models.Some(req.Description)
	}
	if req.Completed != nil {
		p.Completed = models.Some(*req.Completed)
	}
	return p
}
