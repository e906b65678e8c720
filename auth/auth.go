// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid session token")
)

// SessionCookieName is the cookie the session token travels in.
const SessionCookieName = "card-counter-session"

// SessionTTL is how long a login stays valid.
const SessionTTL = 30 * 24 * time.Hour

// CheckPassword compares the supplied password against the configured
// shared secret in constant time.
func CheckPassword(supplied, configured string) error {
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(configured)) != 1 {
		return ErrInvalidPassword
	}
	return nil
}

// CreateSessionToken mints an HS256 session token. There are no user
// accounts: the only claim is that the bearer knew the shared password.
func CreateSessionToken(secret string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"authenticated": true,
		"iat":           now.Unix(),
		"exp":           now.Add(SessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// VerifySessionToken checks signature, expiry, and the authenticated
// claim. Any failure is ErrInvalidToken; callers do not distinguish why
// a session is bad.
func VerifySessionToken(tokenString, secret string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["authenticated"] != true {
		return ErrInvalidToken
	}
	return nil
}
