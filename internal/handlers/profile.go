package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile returns the profile owned by the user in the path
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetByUserID(c.Param("userId"))
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile applies a partial update. Keys absent from the body are left
// untouched and null clears an optional field.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var patch models.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}
	if patch.HourlyRate.Value != nil && patch.HourlyRate.Value.IsNegative() {
		apierrors.BadRequestWithDetails(c, "Validation failed", []apierrors.FieldError{
			{Field: "hourlyRate", Rule: "gte", Param: "0"},
		})
		return
	}

	profile, err := h.profileService.Update(c.Param("id"), patch)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListFreelancers returns the profiles of every freelancer account
func (h *ProfileHandler) ListFreelancers(c *gin.Context) {
	profiles, err := h.profileService.ListFreelancers()
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

func respondProfileError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrProfileNotFound) {
		apierrors.NotFound(c, "Profile not found")
		return
	}
	respondInternal(c, err)
}
