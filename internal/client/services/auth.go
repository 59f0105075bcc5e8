// Package services holds the CLI's application services. They combine the
// remote API client with the locally persisted session.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/client/client"
	"github.com/dmitrijs2005/todokeeper/internal/client/repositories/session"
)

// AuthService manages the signed-in identity of the CLI.
//
// Signin persists the session so Restore can pick it up on the next run;
// Logout forgets it both in memory and on disk.
type AuthService interface {
	Signup(ctx context.Context, email string, password []byte) error
	Signin(ctx context.Context, email string, password []byte) (*session.Session, error)
	Restore(ctx context.Context) (*session.Session, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client   client.Client
	sessions session.Repository
	timeout  time.Duration
}

func NewAuthService(c client.Client, sessions session.Repository, timeout time.Duration) AuthService {
	return &authService{client: c, sessions: sessions, timeout: timeout}
}

func (a *authService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

func (a *authService) Signup(ctx context.Context, email string, password []byte) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	_, err := a.client.Signup(ctx, email, string(password))
	return err
}

func (a *authService) Signin(ctx context.Context, email string, password []byte) (*session.Session, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.client.Signin(ctx, email, string(password))
	if err != nil {
		return nil, err
	}

	s := session.Session{Email: email, UserID: resp.UserID, AccessToken: resp.AccessToken}
	if err := a.sessions.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &s, nil
}

// Restore reloads a stored session and resumes sending its token. It
// returns nil, nil when there is nothing to restore.
func (a *authService) Restore(ctx context.Context) (*session.Session, error) {
	s, err := a.sessions.Load(ctx)
	if err != nil || s == nil {
		return nil, err
	}
	a.client.SetAccessToken(s.AccessToken)
	return s, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.SetAccessToken("")
	return a.sessions.Clear(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// IsSessionExpired reports whether err means the server no longer accepts
// the current token.
func IsSessionExpired(err error) bool {
	return errors.Is(err, client.ErrUnauthorized)
}
