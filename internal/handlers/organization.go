package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/volunteerconnect/server/internal/services"
	"github.com/volunteerconnect/server/pkg/response"
)

// OrganizationHandler exposes the organizer dashboard endpoints.
type OrganizationHandler struct {
	orgs *services.OrganizationService
}

// NewOrganizationHandler constructs an organization handler.
func NewOrganizationHandler(db *gorm.DB) (*OrganizationHandler, error) {
	orgs, err := services.NewOrganizationService(db)
	if err != nil {
		return nil, err
	}
	return &OrganizationHandler{orgs: orgs}, nil
}

// Profile serves GET /api/organization/profile.
func (h *OrganizationHandler) Profile(c *gin.Context) {
	org, err := h.orgs.Profile(c.Request.Context(), currentEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, org)
}

// Stats serves GET /api/organization/stats.
func (h *OrganizationHandler) Stats(c *gin.Context) {
	stats, err := h.orgs.Stats(c.Request.Context(), currentEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// VolunteerData serves GET /api/organization/volunteer-data.
func (h *OrganizationHandler) VolunteerData(c *gin.Context) {
	rows, err := h.orgs.VolunteerData(c.Request.Context(), currentEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}
