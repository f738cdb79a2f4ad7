package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appledger "github.com/ledgerline/backend/internal/application/ledger"
)

type AccountHandler struct {
	BaseHandler
	accountService *appledger.AccountService
}

func NewAccountHandler(accountService *appledger.AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		BaseHandler:    NewBaseHandler(logger),
		accountService: accountService,
	}
}

func (h *AccountHandler) RegisterRoutes(group *gin.RouterGroup) {
	accounts := group.Group("/projects/:projectId/accounts")
	accounts.GET("", h.List)
	accounts.POST("", h.Create)
	accounts.GET("/:accountId", h.Get)
	accounts.PATCH("/:accountId", h.Update)
	accounts.DELETE("/:accountId", h.Delete)
}

type CreateAccountRequest struct {
	Name          string          `json:"name" binding:"required,max=255"`
	Description   string          `json:"description" binding:"max=2000"`
	AccountNumber string          `json:"account_number" binding:"required,max=64"`
	Alias         string          `json:"alias" binding:"max=255"`
	InitialDate   *time.Time      `json:"initial_date"`
	Amount        decimal.Decimal `json:"amount"`
	BankID        uuid.UUID       `json:"bank_id"`
	CurrencyID    uuid.UUID       `json:"currency_id"`
	CountryID     uuid.UUID       `json:"country_id"`
}

type UpdateAccountRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Description   *string          `json:"description" binding:"omitempty,max=2000"`
	AccountNumber *string          `json:"account_number" binding:"omitempty,min=1,max=64"`
	Alias         *string          `json:"alias" binding:"omitempty,max=255"`
	InitialDate   *time.Time       `json:"initial_date"`
	Amount        *decimal.Decimal `json:"amount"`
	BankID        *uuid.UUID       `json:"bank_id"`
	CurrencyID    *uuid.UUID       `json:"currency_id"`
	CountryID     *uuid.UUID       `json:"country_id"`
}

func (h *AccountHandler) List(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, ok := h.uuidParam(c, "projectId")
	if !ok {
		return
	}

	accounts, err := h.accountService.List(c.Request.Context(), principal, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, accounts, len(accounts))
}

func (h *AccountHandler) Create(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, ok := h.uuidParam(c, "projectId")
	if !ok {
		return
	}

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	account, err := h.accountService.Create(c.Request.Context(), principal, projectID, appledger.CreateAccountInput{
		Name:          req.Name,
		Description:   req.Description,
		AccountNumber: req.AccountNumber,
		Alias:         req.Alias,
		InitialDate:   req.InitialDate,
		Amount:        req.Amount,
		BankID:        req.BankID,
		CurrencyID:    req.CurrencyID,
		CountryID:     req.CountryID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, account)
}

func (h *AccountHandler) Get(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, ok := h.uuidParam(c, "projectId")
	if !ok {
		return
	}
	accountID, ok := h.uuidParam(c, "accountId")
	if !ok {
		return
	}

	account, err := h.accountService.Get(c.Request.Context(), principal, projectID, accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}

func (h *AccountHandler) Update(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, ok := h.uuidParam(c, "projectId")
	if !ok {
		return
	}
	accountID, ok := h.uuidParam(c, "accountId")
	if !ok {
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	account, err := h.accountService.Update(c.Request.Context(), principal, projectID, accountID, appledger.UpdateAccountInput{
		Name:          req.Name,
		Description:   req.Description,
		AccountNumber: req.AccountNumber,
		Alias:         req.Alias,
		InitialDate:   req.InitialDate,
		Amount:        req.Amount,
		BankID:        req.BankID,
		CurrencyID:    req.CurrencyID,
		CountryID:     req.CountryID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}

func (h *AccountHandler) Delete(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, ok := h.uuidParam(c, "projectId")
	if !ok {
		return
	}
	accountID, ok := h.uuidParam(c, "accountId")
	if !ok {
		return
	}

	if err := h.accountService.Delete(c.Request.Context(), principal, projectID, accountID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "account deleted"})
}
