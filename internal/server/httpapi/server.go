// Package httpapi exposes the todo services as a JSON REST API.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

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

type HTTPServer struct {
	address        string
	allowedOrigins []string
	users          AuthService
	todos          TodoService
	logger         logging.Logger
}

func NewHTTPServer(a string, origins []string, l logging.Logger, us AuthService, ts TodoService) *HTTPServer {
	return &HTTPServer{
		address:        a,
		allowedOrigins: origins,
		logger:         l.With("module", "http_server"),
		users:          us,
		todos:          ts,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then shuts the
// server down, waiting up to shutdownTimeout for in-flight requests.
func (s *HTTPServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
