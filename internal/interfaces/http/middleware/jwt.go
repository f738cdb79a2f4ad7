// Package middleware wires authentication, principal resolution and the
// transport-level guards into gin.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/infrastructure/auth"
	"github.com/ledgerline/backend/internal/interfaces/http/dto"
)

const (
	ContextKeyClaims   = "jwt_claims"
	ContextKeyUserID   = "jwt_user_id"
	ContextKeyUsername = "jwt_username"
)

type JWTConfig struct {
	// SkipPaths are exact paths that bypass authentication.
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that bypass authentication.
	SkipPathPrefixes []string
}

// JWT validates the bearer token, consults the revocation list, and stores
// the claims in the request context. Revocation-list lookups fail open so a
// redis outage does not take authentication down with it.
func JWT(jwtService *auth.JWTService, blacklist auth.TokenBlacklist, logger *zap.Logger, cfg JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if path == skip {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		token, ok := extractBearerToken(c)
		if !ok {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "missing or malformed authorization header")
			return
		}

		claims, err := jwtService.ValidateAccessToken(token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				abortUnauthorized(c, dto.ErrCodeTokenExpired, "token expired")
			default:
				abortUnauthorized(c, dto.ErrCodeTokenInvalid, "invalid token")
			}
			return
		}

		if revoked, err := blacklist.IsRevoked(c.Request.Context(), claims.ID); err != nil {
			logger.Warn("revocation lookup failed", zap.Error(err))
		} else if revoked {
			abortUnauthorized(c, dto.ErrCodeTokenInvalid, "token revoked")
			return
		}
		if claims.IssuedAt != nil {
			if invalidated, err := blacklist.IsUserTokenInvalidated(c.Request.Context(), claims.UserID, claims.IssuedAt.Time); err != nil {
				logger.Warn("revocation lookup failed", zap.Error(err))
			} else if invalidated {
				abortUnauthorized(c, dto.ErrCodeTokenInvalid, "token revoked")
				return
			}
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUsername, claims.Subject)
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(code, message, c.GetString(ContextKeyRequestID)))
}

// GetClaims returns the validated claims stored by the JWT middleware.
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
