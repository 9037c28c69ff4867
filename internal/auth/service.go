// Package auth issues and checks the bearer tokens that guard the admin API.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
)

const defaultTokenTTL = 12 * time.Hour

// Service authenticates the single configured administrator.
type Service struct {
	secret       string
	username     string
	passwordHash string
	tokenTTL     time.Duration
}

func NewService(secret, username, passwordHash string, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &Service{
		secret:       secret,
		username:     username,
		passwordHash: passwordHash,
		tokenTTL:     tokenTTL,
	}
}

// Login checks the credentials and returns an access token and its lifetime in seconds.
func (s *Service) Login(_ context.Context, username, password string) (string, int, error) {
	// bcrypt runs even for an unknown username so both failures take as long.
	passwordOK := s.passwordHash != "" && VerifyPassword(s.passwordHash, password)
	userOK := s.username != "" && subtle.ConstantTimeCompare([]byte(s.username), []byte(username)) == 1
	if !passwordOK || !userOK {
		return "", 0, ErrUnauthorized
	}

	token, _, err := GenerateToken(s.secret, s.username, RoleAdmin, s.tokenTTL)
	if err != nil {
		return "", 0, err
	}
	return token, int(s.tokenTTL.Seconds()), nil
}

// Verify implements httpx.TokenVerifier.
func (s *Service) Verify(token string) (string, string, error) {
	claims, err := ParseToken(s.secret, token)
	if err != nil {
		return "", "", ErrUnauthorized
	}
	return claims.Sub, claims.Role, nil
}
