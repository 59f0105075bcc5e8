// Package client talks to the todokeeper gRPC API.
//
// GRPCClient owns the connection, attaches the current access token to
// every call through a unary interceptor and maps gRPC status codes to the
// sentinel errors in errors.go, so callers can match them with errors.Is.
package client
