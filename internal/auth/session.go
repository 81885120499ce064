// Package auth issues and validates owner sessions. A Session is carried
// explicitly through request contexts instead of living in package state.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

const tokenTTL = 24 * time.Hour

// Session identifies an authenticated profile for the duration of a request.
type Session struct {
	ProfileID int
	Email     string
	IsAdmin   bool
}

type claims struct {
	ProfileID int    `json:"profile_id"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// NewToken signs a JWT for the session.
func NewToken(s Session, secret []byte) (string, error) {
	c := claims{
		ProfileID: s.ProfileID,
		Email:     s.Email,
		IsAdmin:   s.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(secret)
}

// ParseToken validates the JWT and returns the session it carries.
func ParseToken(tokenStr string, secret []byte) (Session, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenStr, c, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}
	return Session{ProfileID: c.ProfileID, Email: c.Email, IsAdmin: c.IsAdmin}, nil
}

type contextKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok
}
