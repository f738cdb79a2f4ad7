// Package auth implements token issuance and validation on top of
// HMAC-signed JWTs, plus an optional redis-backed revocation list.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Scopes carried in issued tokens.
const (
	ScopeMe        = "me"
	ScopeSuperuser = "superuser"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token expired")
	ErrWrongTokenType   = errors.New("wrong token type")
	ErrTokenRevoked     = errors.New("token revoked")
	ErrMissingSecret    = errors.New("jwt secret not configured")
	ErrTokenGeneration  = errors.New("token generation failed")
	ErrUnexpectedMethod = errors.New("unexpected signing method")
)

// Claims is the payload carried by issued tokens. Subject holds the
// username; UserID holds the stable identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string   `json:"user_id"`
	Scopes    []string `json:"scopes"`
	TokenType string   `json:"token_type"`
}

func (c *Claims) HasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

func (c *Claims) UserUUID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

// TokenPair bundles an access token with its refresh counterpart.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

type JWTService struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewJWTService(secret, issuer string, accessTTL, refreshTTL time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &JWTService{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// TokenSubject identifies the user a token pair is issued for.
type TokenSubject struct {
	UserID    uuid.UUID
	Username  string
	Superuser bool
}

// GenerateTokenPair issues a fresh access/refresh pair for the subject.
func (s *JWTService) GenerateTokenPair(subject TokenSubject) (*TokenPair, error) {
	now := time.Now()
	scopes := []string{ScopeMe}
	if subject.Superuser {
		scopes = append(scopes, ScopeSuperuser)
	}

	accessExpiry := now.Add(s.accessTTL)
	accessToken, err := s.signToken(subject, scopes, TokenTypeAccess, now, accessExpiry)
	if err != nil {
		return nil, err
	}

	refreshExpiry := now.Add(s.refreshTTL)
	refreshToken, err := s.signToken(subject, scopes, TokenTypeRefresh, now, refreshExpiry)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExpiry,
		RefreshExpiresAt: refreshExpiry,
	}, nil
}

func (s *JWTService) signToken(subject TokenSubject, scopes []string, tokenType string, issuedAt, expiresAt time.Time) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.Username,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
		UserID:    subject.UserID.String(),
		Scopes:    scopes,
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return signed, nil
}

// ValidateAccessToken parses and verifies an access token.
func (s *JWTService) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.validateToken(tokenString, TokenTypeAccess)
}

// ValidateRefreshToken parses and verifies a refresh token.
func (s *JWTService) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return s.validateToken(tokenString, TokenTypeRefresh)
}

func (s *JWTService) validateToken(tokenString, expectedType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedMethod
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != expectedType {
		return nil, ErrWrongTokenType
	}
	if claims.UserID == "" || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// AccessTTL exposes the configured access-token lifetime.
func (s *JWTService) AccessTTL() time.Duration {
	return s.accessTTL
}

// RefreshTTL exposes the configured refresh-token lifetime.
func (s *JWTService) RefreshTTL() time.Duration {
	return s.refreshTTL
}
