package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/volunteerconnect/server/internal/services"
	"github.com/volunteerconnect/server/pkg/response"
)

// HistoryHandler exposes HTTP endpoints for volunteer participation records.
type HistoryHandler struct {
	history *services.HistoryService
}

// NewHistoryHandler constructs a history handler.
func NewHistoryHandler(db *gorm.DB) (*HistoryHandler, error) {
	history, err := services.NewHistoryService(db)
	if err != nil {
		return nil, err
	}
	return &HistoryHandler{history: history}, nil
}

type recordHistoryRequest struct {
	EventID       string   `json:"eventId"`
	EventName     string   `json:"eventName"`
	Status        string   `json:"status"`
	VolunteerName string   `json:"volunteerName"`
	Hours         *float64 `json:"hours"`
	Feedback      string   `json:"feedback"`
}

type updateHistoryRequest struct {
	Status   *string  `json:"status"`
	Hours    *float64 `json:"hours"`
	Feedback *string  `json:"feedback"`
}

// List serves GET /api/volunteer-history for the current user.
func (h *HistoryHandler) List(c *gin.Context) {
	email := currentEmail(c)

	var rows any
	var err error
	if isOrganization(c) {
		rows, err = h.history.ListForOrganizer(c.Request.Context(), email)
	} else {
		rows, err = h.history.ListForVolunteer(c.Request.Context(), email)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

// Create serves POST /api/volunteer-history.
func (h *HistoryHandler) Create(c *gin.Context) {
	var req recordHistoryRequest
	if !bindAndValidate(c, &req) {
		return
	}

	entry, err := h.history.Record(c.Request.Context(), currentEmail(c), services.RecordHistoryInput{
		EventID:       req.EventID,
		EventName:     req.EventName,
		Status:        req.Status,
		VolunteerName: req.VolunteerName,
		Hours:         req.Hours,
		Feedback:      req.Feedback,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, entry)
}

// Update serves PUT /api/volunteer-history/:id. Organizers record outcomes.
func (h *HistoryHandler) Update(c *gin.Context) {
	var req updateHistoryRequest
	if !bindAndValidate(c, &req) {
		return
	}

	entry, err := h.history.UpdateOutcome(c.Request.Context(), currentEmail(c), c.Param("id"), services.UpdateHistoryInput{
		Status:   req.Status,
		Hours:    req.Hours,
		Feedback: req.Feedback,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, entry)
}
