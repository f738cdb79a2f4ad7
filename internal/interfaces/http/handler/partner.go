package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appledger "github.com/ledgerline/backend/internal/application/ledger"
)

type PartnerHandler struct {
	BaseHandler
	partnerService *appledger.PartnerService
}

func NewPartnerHandler(partnerService *appledger.PartnerService, logger *zap.Logger) *PartnerHandler {
	return &PartnerHandler{
		BaseHandler:    NewBaseHandler(logger),
		partnerService: partnerService,
	}
}

func (h *PartnerHandler) RegisterRoutes(group *gin.RouterGroup) {
	partners := group.Group("/projects/:projectId/accounts/:accountId/partners")
	partners.GET("", h.List)
	partners.POST("", h.Create)
	partners.GET("/:partnerId", h.Get)
	partners.PATCH("/:partnerId", h.Update)
	partners.DELETE("/:partnerId", h.Delete)
}

type CreatePartnerRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Description string          `json:"description" binding:"max=2000"`
	InitialDate *time.Time      `json:"initial_date"`
	Percentage  decimal.Decimal `json:"percentage"`
}

type UpdatePartnerRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	InitialDate *time.Time       `json:"initial_date"`
	Percentage  *decimal.Decimal `json:"percentage"`
}

func (h *PartnerHandler) pathIDs(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	projectID, ok := h.uuidParam(c, "projectId")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	accountID, ok := h.uuidParam(c, "accountId")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return projectID, accountID, true
}

func (h *PartnerHandler) List(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, accountID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	partners, err := h.partnerService.List(c.Request.Context(), principal, projectID, accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, partners, len(partners))
}

func (h *PartnerHandler) Create(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, accountID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	var req CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	partner, err := h.partnerService.Create(c.Request.Context(), principal, projectID, accountID, appledger.CreatePartnerInput{
		Name:        req.Name,
		Description: req.Description,
		InitialDate: req.InitialDate,
		Percentage:  req.Percentage,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, partner)
}

func (h *PartnerHandler) Get(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, accountID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	partnerID, ok := h.uuidParam(c, "partnerId")
	if !ok {
		return
	}

	partner, err := h.partnerService.Get(c.Request.Context(), principal, projectID, accountID, partnerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, partner)
}

func (h *PartnerHandler) Update(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, accountID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	partnerID, ok := h.uuidParam(c, "partnerId")
	if !ok {
		return
	}

	var req UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	partner, err := h.partnerService.Update(c.Request.Context(), principal, projectID, accountID, partnerID, appledger.UpdatePartnerInput{
		Name:        req.Name,
		Description: req.Description,
		InitialDate: req.InitialDate,
		Percentage:  req.Percentage,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, partner)
}

func (h *PartnerHandler) Delete(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, accountID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	partnerID, ok := h.uuidParam(c, "partnerId")
	if !ok {
		return
	}

	if err := h.partnerService.Delete(c.Request.Context(), principal, projectID, accountID, partnerID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "partner deleted"})
}
