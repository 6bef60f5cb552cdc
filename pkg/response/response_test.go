package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	appErrors "github.com/volunteerconnect/server/pkg/errors"
)

func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, http.StatusOK, gin.H{"message": "Profile updated successfully"})

	require.Equal(t, http.StatusOK, w.Code)

	var payload Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.True(t, payload.Success)
	require.Nil(t, payload.Error)
}

func TestErrorEnvelopeMapsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
	}{
		{appErrors.NewBadRequest("Missing required fields"), http.StatusBadRequest},
		{appErrors.ErrUnauthorized, http.StatusUnauthorized},
		{appErrors.NewNotFound("Profile not found"), http.StatusNotFound},
		{appErrors.NewConflict("Email already registered"), http.StatusConflict},
		{nil, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Error(c, tc.err)

		require.Equal(t, tc.status, w.Code)

		var payload Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
		require.False(t, payload.Success)
		require.NotNil(t, payload.Error)
	}
}
