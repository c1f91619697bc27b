package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("jwt-test-secret")

func TestGenerateAndVerifyJWT(t *testing.T) {
	token, err := GenerateJWT(42, TokenTTL, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	adminID, err := VerifyJWT(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, int64(42), adminID)
}

func TestVerifyJWTExpired(t *testing.T) {
	token, err := GenerateJWT(7, -time.Minute, testSecret)
	require.NoError(t, err)

	_, err = VerifyJWT(token, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(7, TokenTTL, testSecret)
	require.NoError(t, err)

	_, err = VerifyJWT(token, []byte("a different secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyJWTTampered(t *testing.T) {
	token, err := GenerateJWT(7, TokenTTL, testSecret)
	require.NoError(t, err)

	truncated := token[:len(token)-10]
	_, err = VerifyJWT(truncated, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	swapped := parts[0] + "." + parts[1] + "X." + parts[2]
	_, err = VerifyJWT(swapped, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyJWTGarbage(t *testing.T) {
	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := VerifyJWT(token, testSecret)
		require.ErrorIs(t, err, ErrInvalidToken, "token=%q", token)
	}
}
