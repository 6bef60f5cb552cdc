package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/volunteerconnect/server/internal/services"
	"github.com/volunteerconnect/server/pkg/response"
)

// NotificationHandler exposes HTTP endpoints for notifications.
type NotificationHandler struct {
	service *services.NotificationService
}

// NewNotificationHandler constructs a notification handler.
func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type createNotificationRequest struct {
	UserEmail string `json:"userEmail"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Date      string `json:"date"`
}

// List serves GET /api/notifications for the current user.
func (h *NotificationHandler) List(c *gin.Context) {
	rows, err := h.service.ListForUser(c.Request.Context(), currentEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

// Create serves POST /api/notifications.
func (h *NotificationHandler) Create(c *gin.Context) {
	var req createNotificationRequest
	if !bindAndValidate(c, &req) {
		return
	}

	notification, err := h.service.Create(c.Request.Context(), services.CreateNotificationInput{
		UserEmail: req.UserEmail,
		Message:   req.Message,
		Type:      req.Type,
		Date:      req.Date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, notification)
}
