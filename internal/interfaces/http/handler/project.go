package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appledger "github.com/ledgerline/backend/internal/application/ledger"
)

type ProjectHandler struct {
	BaseHandler
	projectService *appledger.ProjectService
}

func NewProjectHandler(projectService *appledger.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    NewBaseHandler(logger),
		projectService: projectService,
	}
}

func (h *ProjectHandler) RegisterRoutes(group *gin.RouterGroup) {
	projects := group.Group("/projects")
	projects.GET("", h.List)
	projects.POST("", h.Create)
	projects.GET("/:projectId", h.Get)
	projects.PATCH("/:projectId", h.Update)
	projects.DELETE("/:projectId", h.Delete)
}

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Tree        string `json:"tree"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Tree        *string `json:"tree"`
}

func (h *ProjectHandler) List(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	projects, err := h.projectService.List(c.Request.Context(), principal)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, projects, len(projects))
}

func (h *ProjectHandler) Create(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), principal, appledger.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Tree:        req.Tree,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, project)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, ok := h.uuidParam(c, "projectId")
	if !ok {
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), principal, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, ok := h.uuidParam(c, "projectId")
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), principal, projectID, appledger.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Tree:        req.Tree,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, ok := h.uuidParam(c, "projectId")
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), principal, projectID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "project deleted"})
}
