package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/volunteerconnect/server/pkg/response"
)

// Health returns a status payload useful for readiness checks. The database
// ping is included so load balancers see storage outages.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		code := http.StatusOK

		if db != nil {
			if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}

		response.Success(c, code, gin.H{"status": status})
	}
}
