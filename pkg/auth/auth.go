// Package auth issues and verifies the bearer tokens that identify callers.
// Users are managed by an external identity provider; the token carries the
// user id, username and role.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
)

// Roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ErrInvalidToken is returned for tokens that fail signature or claim checks
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the identity fields carried by a token
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// User returns the identity as a user projection
func (c *Claims) User() *entities.User {
	return &entities.User{ID: c.Subject, Username: c.Username}
}

// IsAdmin reports whether the token grants catalog writes
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// TokenMaker signs and parses HS256 tokens
type TokenMaker struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenMaker creates a token maker
func NewTokenMaker(secret string, ttl time.Duration) *TokenMaker {
	return &TokenMaker{secret: []byte(secret), ttl: ttl}
}

// Generate issues a token for the user
func (m *TokenMaker) Generate(userID, username, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies the token and returns its claims
func (m *TokenMaker) Parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{},
		func(_ *jwt.Token) (any, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
