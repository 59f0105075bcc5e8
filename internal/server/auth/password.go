package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// Supported password digest schemes.
const (
	SchemeSHA256 = "sha256"
	SchemeBcrypt = "bcrypt"
)

// PasswordHasher turns a plaintext password into a stored digest and checks
// candidates against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// NewPasswordHasher returns the hasher for scheme.
//
// SchemeSHA256 produces unsalted lowercase-hex SHA-256 digests, matching the
// digests already stored by the service. SchemeBcrypt produces salted bcrypt
// digests for new passwords and still accepts SHA-256 digests on Verify, so
// switching schemes does not lock out existing accounts.
func NewPasswordHasher(scheme string) (PasswordHasher, error) {
	switch scheme {
	case SchemeSHA256:
		return SHA256Hasher{}, nil
	case SchemeBcrypt:
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password hash scheme %q", scheme)
	}
}

// SHA256Hasher is deterministic and unsalted.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) (string, error) {
	return sha256Hex(password), nil
}

func (SHA256Hasher) Verify(password, digest string) bool {
	return constantTimeEqual(sha256Hex(password), digest)
}

// BcryptHasher hashes with bcrypt at Cost.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password is longer than 72 bytes", common.ErrorValidation)
		}
		return "", err
	}
	return string(digest), nil
}

func (h BcryptHasher) Verify(password, digest string) bool {
	if isBcryptDigest(digest) {
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
	}
	return SHA256Hasher{}.Verify(password, digest)
}

func isBcryptDigest(digest string) bool {
	return strings.HasPrefix(digest, "$2a$") ||
		strings.HasPrefix(digest, "$2b$") ||
		strings.HasPrefix(digest, "$2y$")
}

func sha256Hex(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
