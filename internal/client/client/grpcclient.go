package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/todokeeper/internal/api"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      api.TodoServiceClient

	mu          sync.RWMutex
	accessToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, common.BearerScheme+" "+token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewTodoKeeperClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(extra ...grpc.DialOption) error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, extra...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = api.NewTodoServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// SetAccessToken replaces the token sent with every call. An empty token
// sends none.
func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Signup(ctx context.Context, email, password string) (*api.SignupResponse, error) {
	resp, err := s.client.Signup(ctx, &api.SignupRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

// Signin authenticates and, on success, starts sending the issued token.
func (s *GRPCClient) Signin(ctx context.Context, email, password string) (*api.SigninResponse, error) {
	resp, err := s.client.Signin(ctx, &api.SigninRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.SetAccessToken(resp.AccessToken)
	return resp, nil
}

func (s *GRPCClient) ListTodos(ctx context.Context) ([]*api.Todo, error) {
	resp, err := s.client.ListTodos(ctx, &api.ListTodosRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Todos, nil
}

func (s *GRPCClient) GetTodo(ctx context.Context, id string) (*api.Todo, error) {
	resp, err := s.client.GetTodo(ctx, &api.TodoIDRequest{ID: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) CreateTodo(ctx context.Context, title string, description *string) (*api.Todo, error) {
	resp, err := s.client.CreateTodo(ctx, &api.CreateTodoRequest{Title: title, Description: description})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) UpdateTodo(ctx context.Context, id string, ch TodoChanges) (*api.Todo, error) {
	req := &api.UpdateTodoRequest{
		ID:               id,
		Title:            ch.Title,
		Description:      ch.Description,
		ClearDescription: ch.ClearDescription,
		Completed:        ch.Completed,
	}
	resp, err := s.client.UpdateTodo(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

// DeleteTodo returns ErrNotFound when nothing was deleted.
func (s *GRPCClient) DeleteTodo(ctx context.Context, id string) error {
	resp, err := s.client.DeleteTodo(ctx, &api.TodoIDRequest{ID: id})
	if err != nil {
		return s.mapError(err)
	}
	if !resp.Deleted {
		return ErrNotFound
	}
	return nil
}

func (s *GRPCClient) ToggleTodo(ctx context.Context, id string) (*api.Todo, error) {
	resp, err := s.client.ToggleTodo(ctx, &api.TodoIDRequest{ID: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
