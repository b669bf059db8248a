package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskhub/internal/shared/config"
	"taskhub/pkg/token"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = token.ErrExpired
	ErrPrincipalNotFound  = errors.New("principal not found")
)

type Service interface {
	Authenticate(ctx context.Context, username, password string) (*TokenPair, error)
	Verify(tokenString string) (*token.Claims, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type service struct {
	store      CredentialStore
	codec      *token.Codec
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(store CredentialStore, cfg *config.Config) Service {
	return &service{
		store:      store,
		codec:      token.NewCodec([]byte(cfg.JWT.Secret)),
		accessTTL:  cfg.JWT.JWTExpiresIn,
		refreshTTL: cfg.JWT.RefreshExpiresIn,
	}
}

// Authenticate verifies a password and mints a fresh token pair. Unknown
// username and wrong password are indistinguishable in the returned error.
func (s *service) Authenticate(ctx context.Context, username, password string) (*TokenPair, error) {
	principal, ok := s.store.Find(username)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if !principal.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return s.issue(principal)
}

// Verify decodes a token and enforces the expiry policy. This is the single
// verification path used by both the request gate and refresh.
func (s *service) Verify(tokenString string) (*token.Claims, error) {
	claims, err := s.codec.Decode(tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.Expired(time.Now()) {
		return nil, ErrTokenExpired
	}

	return claims, nil
}

// Refresh validates a refresh token and rotates the full pair. The principal
// is looked up again so a removed principal can no longer refresh.
func (s *service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.Verify(refreshToken)
	if err != nil {
		return nil, err
	}

	principal, ok := s.store.Find(claims.Subject)
	if !ok {
		return nil, ErrPrincipalNotFound
	}

	return s.issue(principal)
}

// issue mints an access/refresh token pair for a principal. Tokens are
// stateless; no server-side state is touched.
func (s *service) issue(principal *Principal) (*TokenPair, error) {
	now := time.Now()

	accessClaims := token.NewClaims(principal.Username, principal.Role, now, s.accessTTL)
	accessToken, err := s.codec.Encode(accessClaims)
	if err != nil {
		return nil, fmt.Errorf("encode access token: %w", err)
	}

	refreshClaims := token.NewClaims(principal.Username, principal.Role, now, s.refreshTTL)
	refreshToken, err := s.codec.Encode(refreshClaims)
	if err != nil {
		return nil, fmt.Errorf("encode refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.accessTTL.Seconds()),
		RefreshToken: refreshToken,
	}, nil
}
