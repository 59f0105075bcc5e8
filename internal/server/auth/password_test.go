package auth

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSHA256Hasher_KnownDigest(t *testing.T) {
	h := SHA256Hasher{}

	digest, err := h.Hash("password")
	require.NoError(t, err)
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", digest)

	again, err := h.Hash("password")
	require.NoError(t, err)
	assert.Equal(t, digest, again, "digest must be deterministic")

	assert.True(t, h.Verify("password", digest))
	assert.False(t, h.Verify("Password", digest))
	assert.False(t, h.Verify("password", ""))
}

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}

	digest, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$2"))
	assert.True(t, h.Verify("s3cret", digest))
	assert.False(t, h.Verify("nope", digest))
}

func TestBcryptHasher_AcceptsLegacyDigest(t *testing.T) {
	legacy, _ := SHA256Hasher{}.Hash("old-password")

	h := BcryptHasher{Cost: bcrypt.MinCost}
	assert.True(t, h.Verify("old-password", legacy))
	assert.False(t, h.Verify("other", legacy))
}

func TestBcryptHasher_TooLong(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}
	_, err := h.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestNewPasswordHasher(t *testing.T) {
	h, err := NewPasswordHasher(SchemeSHA256)
	require.NoError(t, err)
	assert.IsType(t, SHA256Hasher{}, h)

	h, err = NewPasswordHasher(SchemeBcrypt)
	require.NoError(t, err)
	assert.IsType(t, BcryptHasher{}, h)

	_, err = NewPasswordHasher("md5")
	assert.Error(t, err)
}
