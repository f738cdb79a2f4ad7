package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apprefdata "github.com/ledgerline/backend/internal/application/refdata"
	"github.com/ledgerline/backend/internal/interfaces/http/middleware"
)

// entryService is the CRUD surface shared by the reference catalogs.
type entryService interface {
	List(ctx context.Context) ([]apprefdata.EntryDTO, error)
	Create(ctx context.Context, input apprefdata.CreateEntryInput) (*apprefdata.EntryDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*apprefdata.EntryDTO, error)
	Update(ctx context.Context, id uuid.UUID, input apprefdata.UpdateEntryInput) (*apprefdata.EntryDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type populateFunc func(ctx context.Context) (*apprefdata.PopulateResult, error)

// RefdataHandler serves one reference catalog (countries, currencies or
// banks). Populate is nil for catalogs without a seed set.
type RefdataHandler struct {
	BaseHandler
	basePath string
	noun     string
	service  entryService
	populate populateFunc
}

func NewCountryHandler(service *apprefdata.CountryService, logger *zap.Logger) *RefdataHandler {
	return &RefdataHandler{
		BaseHandler: NewBaseHandler(logger),
		basePath:    "/countries",
		noun:        "country",
		service:     service,
		populate:    service.Populate,
	}
}

func NewCurrencyHandler(service *apprefdata.CurrencyService, logger *zap.Logger) *RefdataHandler {
	return &RefdataHandler{
		BaseHandler: NewBaseHandler(logger),
		basePath:    "/currencies",
		noun:        "currency",
		service:     service,
		populate:    service.Populate,
	}
}

func NewBankHandler(service *apprefdata.BankService, logger *zap.Logger) *RefdataHandler {
	return &RefdataHandler{
		BaseHandler: NewBaseHandler(logger),
		basePath:    "/banks",
		noun:        "bank",
		service:     service,
	}
}

func (h *RefdataHandler) RegisterRoutes(group *gin.RouterGroup) {
	entries := group.Group(h.basePath)
	entries.GET("", h.List)
	entries.POST("", h.Create)
	entries.GET("/:id", h.Get)
	entries.PATCH("/:id", h.Update)
	entries.DELETE("/:id", h.Delete)
	if h.populate != nil {
		entries.POST("/admin/populate", middleware.RequireSuperuser(), h.Populate)
	}
}

type CreateEntryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Code string `json:"code" binding:"max=32"`
}

type UpdateEntryRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=255"`
	Code *string `json:"code" binding:"omitempty,max=32"`
}

func (h *RefdataHandler) List(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, entries, len(entries))
}

func (h *RefdataHandler) Create(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	entry, err := h.service.Create(c.Request.Context(), apprefdata.CreateEntryInput{
		Name: req.Name,
		Code: req.Code,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, entry)
}

func (h *RefdataHandler) Get(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entry)
}

func (h *RefdataHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	entry, err := h.service.Update(c.Request.Context(), id, apprefdata.UpdateEntryInput{
		Name: req.Name,
		Code: req.Code,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entry)
}

func (h *RefdataHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": h.noun + " deleted"})
}

func (h *RefdataHandler) Populate(c *gin.Context) {
	result, err := h.populate(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
