package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of an issued session token.
const TokenTTL = time.Hour

// ErrInvalidToken is the single failure outcome of VerifyJWT. Missing or bad
// signatures, malformed payloads and expired tokens all collapse into it so
// callers cannot leak which check failed.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims represents JWT claims. The subject is the admin id in decimal form.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateJWT creates a signed token embedding the admin identity, an
// issuance timestamp and an expiry ttl from now.
func GenerateJWT(adminID int64, ttl time.Duration, secret []byte) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(adminID, 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyJWT parses and validates a token string and returns the admin
// identity it carries. Verification fails closed: every failure mode maps to
// ErrInvalidToken.
func VerifyJWT(tokenStr string, secret []byte) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return 0, ErrInvalidToken
	}

	adminID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return adminID, nil
}
