package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer   = "resumegen"
	tokenTTL = 24 * time.Hour
)

var (
	// ErrTokenExpired is returned when the token signature is valid but the expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed is returned for any other verification failure.
	ErrTokenMalformed = errors.New("token malformed")
)

// Claims carries the identity embedded in an access token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Issue signs a 24-hour HS256 token for the given user.
func Issue(userID, email string, secret []byte) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", errors.New("user id is required")
	}
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		Email: email,
	})
	return token.SignedString(secret)
}

// Verify parses a token and returns its claims. Failures are mapped to
// ErrTokenExpired or ErrTokenMalformed so callers can answer 401 without
// inspecting library error types.
func Verify(tokenString string, secret []byte) (Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenMalformed
	}
	if !token.Valid || claims.Subject == "" {
		return Claims{}, ErrTokenMalformed
	}
	return *claims, nil
}
