// Package services contains server-side business logic. This file implements
// AuthService, which handles signup, signin and resolving bearer tokens to
// users.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/config"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TokenTypeBearer is the token_type reported by Signin.
const TokenTypeBearer = "bearer"

// SigninResult is what a successful signin hands back to the caller.
type SigninResult struct {
	AccessToken string
	TokenType   string
	UserID      string
}

// AuthService provides authentication-related operations:
// - Signup: create users
// - Signin: verify credentials and mint an access token
// - Authenticate: resolve a bearer token to its user
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *auth.TokenManager
	hasher      auth.PasswordHasher
	now         func() time.Time
	newID       func() string
}

// NewAuthService constructs an AuthService from repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) (*AuthService, error) {
	tokens, err := auth.NewTokenManager(cfg.SecretKey, cfg.SigningAlgorithm, cfg.AccessTokenValidityDuration)
	if err != nil {
		return nil, err
	}
	hasher, err := auth.NewPasswordHasher(cfg.PasswordHashScheme)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		hasher:      hasher,
		now:         time.Now,
		newID:       uuid.NewString,
	}, nil
}

// Signup registers a new user. An email that is already registered yields
// common.ErrDuplicateEmail whatever the password.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*models.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: hash password: %w", common.ErrorInternal, err)
	}

	now := s.now().UTC()
	user := &models.User{
		ID:             s.newID(),
		Email:          email,
		PasswordDigest: digest,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByEmail(ctx, email)
		switch {
		case err == nil:
			return common.ErrDuplicateEmail
		case !errors.Is(err, common.ErrorNotFound):
			return err
		}

		// the unique constraint still guards a concurrent signup
		_, err = repo.Create(ctx, user)
		return err
	})
	if err != nil {
		return nil, domainError(err)
	}
	return user, nil
}

// Signin verifies credentials and issues an access token. Unknown email and
// wrong password are reported identically as common.ErrInvalidCredentials.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*SigninResult, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	if !s.hasher.Verify(password, user.PasswordDigest) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: issue token: %w", common.ErrorInternal, err)
	}

	return &SigninResult{AccessToken: token, TokenType: TokenTypeBearer, UserID: user.ID}, nil
}

// Authenticate verifies the token and loads the user named by its subject.
// Every failure to identify the caller is common.ErrUnauthenticated; only
// store failures come back as common.ErrorInternal.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, common.ErrUnauthenticated
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnauthenticated
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return user, nil
}

// TokenTTL is the lifetime of the tokens this service issues.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}

func validateCredentials(email, password string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", common.ErrorValidation)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid email address", common.ErrorValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	return nil
}
