package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects returns all projects, or the projects of one client when the
// clientId query parameter is given
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.List(c.Query("clientId"))
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject returns a specific project by ID
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectService.Get(c.Param("id"))
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// CreateProject posts a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	type CreateProjectRequest struct {
		ClientID    string           `json:"clientId" binding:"required"`
		Title       string           `json:"title" binding:"required"`
		Description string           `json:"description" binding:"required"`
		Budget      *decimal.Decimal `json:"budget" binding:"required"`
		Skills      []string         `json:"skills"`
		Deadline    *time.Time       `json:"deadline"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	project, err := h.projectService.Create(services.CreateProjectInput{
		ClientID:    req.ClientID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      *req.Budget,
		Skills:      req.Skills,
		Deadline:    req.Deadline,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject applies a partial update to a project
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var patch models.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	project, err := h.projectService.Update(c.Param("id"), patch)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject removes a project
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectService.Delete(c.Param("id")); err != nil {
		respondProjectError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	case errors.Is(err, services.ErrNegativeBudget):
		apierrors.BadRequestWithDetails(c, "Validation failed", []apierrors.FieldError{
			{Field: "budget", Rule: "gte", Param: "0"},
		})
	default:
		respondInternal(c, err)
	}
}
