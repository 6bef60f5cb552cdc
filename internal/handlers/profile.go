package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/volunteerconnect/server/internal/models"
	"github.com/volunteerconnect/server/internal/services"
	"github.com/volunteerconnect/server/pkg/response"
)

// ProfileHandler exposes HTTP endpoints for volunteer profiles.
type ProfileHandler struct {
	profiles *services.ProfileService
}

// NewProfileHandler constructs a profile handler.
func NewProfileHandler(db *gorm.DB) (*ProfileHandler, error) {
	profiles, err := services.NewProfileService(db)
	if err != nil {
		return nil, err
	}
	return &ProfileHandler{profiles: profiles}, nil
}

type profileRequest struct {
	FullName     string                    `json:"fullName"`
	Address1     string                    `json:"address1"`
	Address2     string                    `json:"address2"`
	City         string                    `json:"city"`
	State        string                    `json:"state"`
	ZipCode      string                    `json:"zipCode"`
	Skills       []string                  `json:"skills"`
	Preferences  string                    `json:"preferences"`
	Availability []models.AvailabilitySlot `json:"availability"`
}

// Get serves GET /api/profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context(), currentEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// Upsert serves POST and PUT /api/profile. Both verbs create-or-replace; the
// stored fields are overwritten wholesale.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req profileRequest
	if !bindAndValidate(c, &req) {
		return
	}

	profile, err := h.profiles.Upsert(c.Request.Context(), currentEmail(c), services.UpsertProfileInput{
		FullName:     req.FullName,
		Address1:     req.Address1,
		Address2:     req.Address2,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Skills:       req.Skills,
		Preferences:  req.Preferences,
		Availability: req.Availability,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}
