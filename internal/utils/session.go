package utils // package utils provides helper functions for tokens and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrInvalidSession is returned when a session token fails to parse or
// verify. Callers treat the bearer as an anonymous visitor.
var ErrInvalidSession = errors.New("invalid session token")

// NewSessionToken builds and signs an HS256 JWT carrying an admin's ID as
// its subject. The token is stored in a browser-session cookie, so it has
// no exp claim of its own: the session ends when the cookie does.
func NewSessionToken(secret string, adminID uint64) (string, error) {
	claims := jwt.MapClaims{
		"sub": adminID,
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseSessionToken verifies a session token and returns the admin ID it
// carries. Any malformed, tampered or differently-signed token yields
// ErrInvalidSession.
func ParseSessionToken(secret, raw string) (uint64, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidSession
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidSession
	}
	// MapClaims decodes numbers as float64.
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, ErrInvalidSession
	}
	return uint64(sub), nil
}
