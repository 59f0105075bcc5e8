package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/api"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userKey ctxKey = "user"

// publicMethods are served without an access token.
var publicMethods = map[string]struct{}{
	api.TodoService_Ping_FullMethodName:   {},
	api.TodoService_Signup_FullMethodName: {},
	api.TodoService_Signin_FullMethodName: {},
}

// UserFromContext returns the user stored by the access token interceptor.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok && u != nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}
	// the health service authenticates nobody
	if info.FullMethod == "/grpc.health.v1.Health/Check" {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken, _ = common.ParseBearer(values[0], true)
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	user, err := s.users.Authenticate(ctx, accessToken)
	if err != nil {
		if errors.Is(err, common.ErrUnauthenticated) {
			return nil, status.Error(codes.Unauthenticated, "could not validate credentials")
		}
		s.logger.Error(ctx, "authenticate failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	ctx = context.WithValue(ctx, userKey, user)

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error(ctx, "grpc call", args...)
	} else {
		s.logger.Info(ctx, "grpc call", args...)
	}
	return resp, err
}
