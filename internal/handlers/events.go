package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/volunteerconnect/server/internal/services"
	"github.com/volunteerconnect/server/pkg/response"
)

// EventHandler exposes HTTP endpoints for event management.
type EventHandler struct {
	events  *services.EventService
	history *services.HistoryService
}

// NewEventHandler constructs an event handler with its backing services.
func NewEventHandler(db *gorm.DB, notifications *services.NotificationService) (*EventHandler, error) {
	events, err := services.NewEventService(db, notifications, services.EventServiceConfig{})
	if err != nil {
		return nil, err
	}
	history, err := services.NewHistoryService(db)
	if err != nil {
		return nil, err
	}
	return &EventHandler{events: events, history: history}, nil
}

type createEventRequest struct {
	Name           string   `json:"eventName"`
	Description    string   `json:"eventDescription"`
	Location       string   `json:"location"`
	RequiredSkills []string `json:"requiredSkills"`
	Urgency        string   `json:"urgency"`
	EventDate      string   `json:"eventDate"`
}

type updateEventRequest struct {
	Status    *string `json:"status"`
	Urgency   *string `json:"urgency"`
	EventDate *string `json:"eventDate"`
}

// List serves GET /api/events. The type query parameter selects the view:
// "organization" narrows to the caller's own events, "history" returns the
// caller's participation records instead of events.
func (h *EventHandler) List(c *gin.Context) {
	email := currentEmail(c)

	switch strings.TrimSpace(c.Query("type")) {
	case "organization":
		events, err := h.events.ListByOrganizer(c.Request.Context(), email)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, events)
	case "history":
		var err error
		var rows any
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
	default:
		events, err := h.events.List(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, events)
	}
}

// Create serves POST /api/events. The organizer is always the caller.
func (h *EventHandler) Create(c *gin.Context) {
	var req createEventRequest
	if !bindAndValidate(c, &req) {
		return
	}

	event, err := h.events.Create(c.Request.Context(), services.CreateEventInput{
		Name:           req.Name,
		Description:    req.Description,
		Location:       req.Location,
		RequiredSkills: req.RequiredSkills,
		Urgency:        req.Urgency,
		EventDate:      req.EventDate,
		OrganizerEmail: currentEmail(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, event)
}

// Update serves PUT /api/events/:id.
func (h *EventHandler) Update(c *gin.Context) {
	var req updateEventRequest
	if !bindAndValidate(c, &req) {
		return
	}

	event, err := h.events.Update(c.Request.Context(), currentEmail(c), c.Param("id"), services.UpdateEventInput{
		Status:    req.Status,
		Urgency:   req.Urgency,
		EventDate: req.EventDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, event)
}
