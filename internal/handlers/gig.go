package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

type GigHandler struct {
	gigService *services.GigService
}

func NewGigHandler(gigService *services.GigService) *GigHandler {
	return &GigHandler{gigService: gigService}
}

// ListGigs returns all gigs, or the gigs of one freelancer when the
// freelancerId query parameter is given
func (h *GigHandler) ListGigs(c *gin.Context) {
	gigs, err := h.gigService.List(c.Query("freelancerId"))
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gigs)
}

// GetGig returns a specific gig by ID
func (h *GigHandler) GetGig(c *gin.Context) {
	gig, err := h.gigService.Get(c.Param("id"))
	if err != nil {
		respondGigError(c, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

// CreateGig publishes a new gig
func (h *GigHandler) CreateGig(c *gin.Context) {
	type CreateGigRequest struct {
		FreelancerID string           `json:"freelancerId" binding:"required"`
		Title        string           `json:"title" binding:"required"`
		Description  string           `json:"description" binding:"required"`
		Price        *decimal.Decimal `json:"price" binding:"required"`
		Skills       []string         `json:"skills"`
		Images       []string         `json:"images"`
	}

	var req CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	gig, err := h.gigService.Create(services.CreateGigInput{
		FreelancerID: req.FreelancerID,
		Title:        req.Title,
		Description:  req.Description,
		Price:        *req.Price,
		Skills:       req.Skills,
		Images:       req.Images,
	})
	if err != nil {
		respondGigError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gig)
}

// UpdateGig applies a partial update to a gig
func (h *GigHandler) UpdateGig(c *gin.Context) {
	var patch models.GigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	gig, err := h.gigService.Update(c.Param("id"), patch)
	if err != nil {
		respondGigError(c, err)
		return
	}

	c.JSON(http.StatusOK, gig)
}

// DeleteGig removes a gig
func (h *GigHandler) DeleteGig(c *gin.Context) {
	if err := h.gigService.Delete(c.Param("id")); err != nil {
		respondGigError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondGigError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGigNotFound):
		apierrors.NotFound(c, "Gig not found")
	case errors.Is(err, services.ErrNegativePrice):
		apierrors.BadRequestWithDetails(c, "Validation failed", []apierrors.FieldError{
			{Field: "price", Rule: "gte", Param: "0"},
		})
	default:
		respondInternal(c, err)
	}
}
