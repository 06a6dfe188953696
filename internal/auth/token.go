// Package auth mints the bearer tokens handed out by the mock backend.
// Tokens are signed HS256 JWTs; clients treat them as opaque strings.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Mint issues a signed token for the given user id.
func Mint(userID string, key []byte, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(key)
}

// Subject extracts and verifies the user id from a minted token.
func Subject(token string, key []byte) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	return parsed.Claims.GetSubject()
}
