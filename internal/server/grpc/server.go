// Package grpc exposes the todo services over gRPC.
package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/todokeeper/internal/api"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// AuthService is the subset of services.AuthService used by the handlers.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*models.User, error)
	Signin(ctx context.Context, email, password string) (*services.SigninResult, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// TodoService is the subset of services.TodoService used by the handlers.
type TodoService interface {
	List(ctx context.Context, userID string) ([]*models.Todo, error)
	Get(ctx context.Context, id, userID string) (*models.Todo, error)
	Create(ctx context.Context, userID string, in models.NewTodo) (*models.Todo, error)
	Update(ctx context.Context, id, userID string, patch models.TodoPatch) (*models.Todo, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
	Toggle(ctx context.Context, id, userID string) (*models.Todo, error)
}

type GRPCServer struct {
	address string
	users   AuthService
	todos   TodoService
	logger  logging.Logger
}

var _ api.TodoServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, us AuthService, ts TodoService) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		todos:   ts,
	}
}

// newServer builds the grpc.Server with interceptors, the todo service and
// the standard health service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	api.RegisterTodoServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	return nil
}
