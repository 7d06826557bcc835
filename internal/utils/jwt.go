// Package utils contains small shared helpers that do not belong to any
// single layer: bearer-token parsing, the HTTP client wrapper and UUID
// generation.
package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chat-sync/models"
	"github.com/golang-jwt/jwt/v5"
)

// ParseBearerToken extracts the raw token from an "Authorization" header
// value of the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	// auth-scheme сравнивается без учёта регистра (RFC 9110)
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("unsupported authorization scheme")
	}
	return parts[1], nil
}

// ParseSessionToken decodes a server-issued JWT without verifying its
// signature and extracts the claims the client keeps: the subject as the
// user identifier and the expiry when present.
//
// Signature verification is deliberately skipped. The token is an opaque
// credential minted by the server; the client has no key material and only
// echoes the token back on authenticated requests.
func ParseSessionToken(tokenString string) (models.Token, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return models.Token{}, fmt.Errorf("error parsing session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Token{}, errors.New("invalid token claims")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error getting subject from token: %w", err)
	}
	if subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	parsed := models.Token{SignedString: tokenString, UserID: subject}

	expiry, err := claims.GetExpirationTime()
	if err != nil {
		return models.Token{}, fmt.Errorf("error getting expiration time from token: %w", err)
	}
	if expiry != nil {
		expiresAt := expiry.Time
		parsed.ExpiresAt = &expiresAt
	}

	return parsed, nil
}
