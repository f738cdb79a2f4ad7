package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appidentity "github.com/ledgerline/backend/internal/application/identity"
	"github.com/ledgerline/backend/internal/interfaces/http/middleware"
)

// UserHandler exposes user administration. Every route requires a superuser.
type UserHandler struct {
	BaseHandler
	userService *appidentity.UserService
}

func NewUserHandler(userService *appidentity.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(group *gin.RouterGroup) {
	users := group.Group("/admin/users")
	users.Use(middleware.RequireSuperuser())
	users.GET("", h.List)
	users.POST("", h.Create)
	users.GET("/:userId", h.Get)
	users.PATCH("/:userId", h.Update)
	users.DELETE("/:userId", h.Delete)
	users.PUT("/:userId/password", h.SetPassword)
	users.PUT("/:userId/active", h.SetActive)
	users.PUT("/:userId/superuser", h.SetSuperuser)
}

type CreateUserRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=64"`
	DisplayName string `json:"display_name" binding:"max=255"`
	Email       string `json:"email" binding:"omitempty,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Superuser   bool   `json:"superuser"`
}

type UpdateUserRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=255"`
	Email       *string `json:"email" binding:"omitempty,email"`
}

type SetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type SetSuperuserRequest struct {
	Superuser *bool `json:"superuser" binding:"required"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, users, len(users))
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), appidentity.CreateUserInput{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Password:    req.Password,
		Superuser:   req.Superuser,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := h.uuidParam(c, "userId")
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := h.uuidParam(c, "userId")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), userID, appidentity.UpdateUserInput{
		DisplayName: req.DisplayName,
		Email:       req.Email,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := h.uuidParam(c, "userId")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "user deleted"})
}

func (h *UserHandler) SetPassword(c *gin.Context) {
	userID, ok := h.uuidParam(c, "userId")
	if !ok {
		return
	}

	var req SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.userService.SetPassword(c.Request.Context(), userID, req.Password); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "password updated"})
}

func (h *UserHandler) SetActive(c *gin.Context) {
	userID, ok := h.uuidParam(c, "userId")
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	user, err := h.userService.SetActive(c.Request.Context(), userID, *req.Active)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

func (h *UserHandler) SetSuperuser(c *gin.Context) {
	userID, ok := h.uuidParam(c, "userId")
	if !ok {
		return
	}

	var req SetSuperuserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	user, err := h.userService.SetSuperuser(c.Request.Context(), userID, *req.Superuser)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}
