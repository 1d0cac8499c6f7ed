package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(duration time.Duration) *JWTService {
	return &JWTService{
		secretKey:     []byte("test-secret"),
		tokenDuration: duration,
		issuer:        "course-advisor",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	s := testService(time.Hour)

	token, err := s.GenerateToken("user-1", "alice", "student")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "course-advisor", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	s := testService(-time.Minute)

	token, err := s.GenerateToken("user-1", "alice", "student")
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := testService(time.Hour).GenerateToken("user-1", "alice", "student")
	require.NoError(t, err)

	other := &JWTService{secretKey: []byte("other-secret"), tokenDuration: time.Hour, issuer: "course-advisor"}
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateGarbageToken(t *testing.T) {
	_, err := testService(time.Hour).ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
