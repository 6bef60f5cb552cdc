package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/volunteerconnect/server/internal/middleware"
	"github.com/volunteerconnect/server/internal/models"
)

// currentEmail returns the authenticated caller's email, or "" when absent.
func currentEmail(c *gin.Context) string {
	return c.GetString(middleware.CtxEmailKey)
}

func currentUserType(c *gin.Context) string {
	return c.GetString(middleware.CtxUserTypeKey)
}

func isOrganization(c *gin.Context) bool {
	return currentUserType(c) == models.UserTypeOrganization
}
