package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/volunteerconnect/server/internal/services"
	"github.com/volunteerconnect/server/pkg/response"
)

// MatchingHandler exposes HTTP endpoints for volunteer/event matching.
type MatchingHandler struct {
	matching *services.MatchingService
}

// NewMatchingHandler constructs a matching handler.
func NewMatchingHandler(matching *services.MatchingService) *MatchingHandler {
	return &MatchingHandler{matching: matching}
}

type acceptMatchRequest struct {
	EventID string `json:"eventId"`
}

// List serves GET /api/matching: events the caller's profile qualifies for.
func (h *MatchingHandler) List(c *gin.Context) {
	matches, err := h.matching.ListMatches(c.Request.Context(), currentEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, matches)
}

// Accept serves POST /api/matching: the caller accepts a matched event.
func (h *MatchingHandler) Accept(c *gin.Context) {
	var req acceptMatchRequest
	if !bindAndValidate(c, &req) {
		return
	}

	entry, err := h.matching.Accept(c.Request.Context(), currentEmail(c), req.EventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, entry)
}
