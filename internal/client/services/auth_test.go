package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/api"
	"github.com/dmitrijs2005/todokeeper/internal/client/client"
	"github.com/dmitrijs2005/todokeeper/internal/client/repositories/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignin_PersistsSession(t *testing.T) {
	fc := &fakeClient{signinResp: &api.SigninResponse{AccessToken: "tok", TokenType: "bearer", UserID: "u-1"}}
	fs := &fakeSessions{}
	svc := NewAuthService(fc, fs, time.Second)

	s, err := svc.Signin(context.Background(), "alice@example.com", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, &session.Session{Email: "alice@example.com", UserID: "u-1", AccessToken: "tok"}, s)
	assert.Equal(t, s, fs.stored)
	assert.True(t, fc.hadDeadline)
}

func TestSignin_ErrorStoresNothing(t *testing.T) {
	fc := &fakeClient{err: client.ErrUnauthorized}
	fs := &fakeSessions{}
	svc := NewAuthService(fc, fs, time.Second)

	_, err := svc.Signin(context.Background(), "alice@example.com", []byte("bad"))
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Nil(t, fs.stored)
}

func TestSignin_SaveFailure(t *testing.T) {
	fc := &fakeClient{signinResp: &api.SigninResponse{AccessToken: "tok"}}
	svc := NewAuthService(fc, &fakeSessions{saveErr: errBoom}, 0)

	_, err := svc.Signin(context.Background(), "a@b.c", []byte("pw"))
	assert.ErrorIs(t, err, errBoom)
}

func TestRestore(t *testing.T) {
	fc := &fakeClient{}
	stored := &session.Session{Email: "a@b.c", UserID: "u-1", AccessToken: "saved"}
	svc := NewAuthService(fc, &fakeSessions{stored: stored}, 0)

	s, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, s)
	assert.Equal(t, "saved", fc.token)

	empty := NewAuthService(&fakeClient{}, &fakeSessions{}, 0)
	s, err = empty.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestLogout_ForgetsToken(t *testing.T) {
	fc := &fakeClient{token: "tok"}
	fs := &fakeSessions{stored: &session.Session{AccessToken: "tok"}}
	svc := NewAuthService(fc, fs, 0)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Empty(t, fc.token)
	assert.Nil(t, fs.stored)
}

func TestSignupPingClose(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, &fakeSessions{}, 0)

	require.NoError(t, svc.Signup(context.Background(), "a@b.c", []byte("pw")))
	require.NoError(t, svc.Ping(context.Background()))
	assert.False(t, fc.hadDeadline)
	require.NoError(t, svc.Close(context.Background()))
	assert.True(t, fc.closed)
}

func TestIsSessionExpired(t *testing.T) {
	assert.True(t, IsSessionExpired(fmt.Errorf("%w: missing token", client.ErrUnauthorized)))
	assert.False(t, IsSessionExpired(client.ErrNotFound))
}
