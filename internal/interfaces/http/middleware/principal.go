package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/domain/identity"
	"github.com/ledgerline/backend/internal/domain/shared"
	"github.com/ledgerline/backend/internal/interfaces/http/dto"
)

const ContextKeyUser = "current_user"

// UserLoader resolves a token subject to its user record.
type UserLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error)
}

// ResolvePrincipal loads the user behind the validated token so role and
// activation changes take effect immediately rather than at token expiry.
// Deleted users read as unauthenticated; deactivated users are forbidden.
func ResolvePrincipal(users UserLoader, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			// unauthenticated route, nothing to resolve
			c.Next()
			return
		}

		userID, err := claims.UserUUID()
		if err != nil {
			abortUnauthorized(c, dto.ErrCodeTokenInvalid, "invalid token subject")
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				abortUnauthorized(c, dto.ErrCodeUnauthorized, "user no longer exists")
				return
			}
			logger.Error("principal lookup failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeInternal, "internal server error", c.GetString(ContextKeyRequestID)))
			return
		}
		if !user.Active {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden, "inactive user", c.GetString(ContextKeyRequestID)))
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// CurrentUser returns the resolved user for the request.
func CurrentUser(c *gin.Context) (*identity.User, bool) {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*identity.User)
	return user, ok
}

// RequireSuperuser rejects non-superuser principals with 403.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "authentication required")
			return
		}
		if !user.Superuser {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden, "superuser privileges required", c.GetString(ContextKeyRequestID)))
			return
		}
		c.Next()
	}
}
