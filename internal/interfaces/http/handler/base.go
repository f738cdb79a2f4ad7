// Package handler implements the HTTP controllers.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appledger "github.com/ledgerline/backend/internal/application/ledger"
	"github.com/ledgerline/backend/internal/domain/shared"
	"github.com/ledgerline/backend/internal/interfaces/http/dto"
	"github.com/ledgerline/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides the response helpers shared by all controllers.
type BaseHandler struct {
	logger *zap.Logger
}

func NewBaseHandler(logger *zap.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

func (h *BaseHandler) SuccessList(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, &dto.Meta{Total: total}))
}

func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeBadRequest, message, h.requestID(c)))
}

// BindingError renders a 400 with per-field details for binding failures.
func (h *BaseHandler) BindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest,
		dto.NewValidationErrorResponse(middleware.FormatValidationErrors(err)))
}

// HandleError maps a service error onto the wire format. Unknown errors are
// logged and surface as 500 without leaking detail.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if domainErr, ok := shared.IsDomainError(err); ok {
		wireCode := dto.NormalizeErrorCode(domainErr.Code)
		status := dto.GetHTTPStatus(wireCode)
		if status >= http.StatusInternalServerError {
			h.logger.Error("request failed",
				zap.String("code", domainErr.Code),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}
		c.JSON(status, dto.NewErrorResponseWithRequestID(wireCode, domainErr.Message, h.requestID(c)))
		return
	}

	h.logger.Error("unhandled error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeInternal, "internal server error", h.requestID(c)))
}

func (h *BaseHandler) requestID(c *gin.Context) string {
	return c.GetString(middleware.ContextKeyRequestID)
}

// principal builds the ownership principal from the resolved user.
func (h *BaseHandler) principal(c *gin.Context) (appledger.Principal, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, "authentication required", h.requestID(c)))
		return appledger.Principal{}, false
	}
	return appledger.Principal{UserID: user.ID, Superuser: user.Superuser}, true
}

// uuidParam parses a path parameter as UUID, rendering 400 on failure.
func (h *BaseHandler) uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.BadRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
