package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise-server/src/models"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword("correct horse battery staple", hash))
	assert.False(t, CheckPassword("wrong password", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	second, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same password differ
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("hunter2hunter2", first))
	assert.True(t, CheckPassword("hunter2hunter2", second))
}

func TestIssueAndParseToken(t *testing.T) {
	secret := []byte("test-secret")
	user := &models.User{ID: 42, Username: "alice"}

	tokenString, err := IssueToken(secret, time.Hour, user)
	require.NoError(t, err)

	claims, err := ParseToken(secret, tokenString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	ttl := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Hour, ttl)
}

func TestParseTokenWrongSecret(t *testing.T) {
	tokenString, err := IssueToken([]byte("secret-one"), time.Hour, &models.User{ID: 1, Username: "bob"})
	require.NoError(t, err)

	_, err = ParseToken([]byte("secret-two"), tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken([]byte("test-secret"), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// signAt crafts a token whose validity window starts at issuedAt, so expiry
// behavior can be checked against the real clock.
func signAt(t *testing.T, secret []byte, issuedAt time.Time, ttl time.Duration) string {
	t.Helper()
	claims := Claims{
		UserID:   7,
		Username: "carol",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return tokenString
}

func TestParseTokenTTLBoundary(t *testing.T) {
	secret := []byte("test-secret")

	// Issued 59 minutes ago with a 1 hour TTL: still valid
	fresh := signAt(t, secret, time.Now().Add(-59*time.Minute), time.Hour)
	claims, err := ParseToken(secret, fresh)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)

	// Issued 61 minutes ago: expired
	stale := signAt(t, secret, time.Now().Add(-61*time.Minute), time.Hour)
	_, err = ParseToken(secret, stale)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
