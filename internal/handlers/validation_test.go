package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestBindAndValidateRejectsMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	c.Request.Header.Set("Content-Type", "application/json")

	var dest struct {
		Name string `json:"name"`
	}
	ok := bindAndValidate(c, &dest)
	require.False(t, ok)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Internal server error")
}

func TestBindAndValidateAcceptsValidPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ok"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var dest struct {
		Name string `json:"name" validate:"required"`
	}
	ok := bindAndValidate(c, &dest)
	require.True(t, ok)
	require.Equal(t, "ok", dest.Name)
}
