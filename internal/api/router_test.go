package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/volunteerconnect/server/internal/app"
	iauth "github.com/volunteerconnect/server/internal/auth"
	"github.com/volunteerconnect/server/internal/database/testutil"
	"github.com/volunteerconnect/server/pkg/response"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.MustOpenTestDB(t, testutil.WithSeedData())

	cfg := &app.Config{}
	cfg.Auth.JWT.Secret = "router-test-secret"
	cfg.Auth.JWT.Issuer = "router-test"
	cfg.Auth.JWT.TTL = time.Minute

	jwtSvc, err := iauth.NewJWTService(cfg.Auth.JWTServiceConfig())
	require.NoError(t, err)

	router, err := NewRouter(db, jwtSvc, cfg)
	require.NoError(t, err)
	return router
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var payload response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.True(t, payload.Success, "body: %s", w.Body.String())

	data, _ := payload.Data.(map[string]any)
	return data
}

func login(t *testing.T, r *gin.Engine, email, userType string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": "password123",
		"userType": userType,
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	data := decodeData(t, w)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRouterRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRouterLoginRejectsBadCredentials(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "volunteer@test.com",
		"password": "wrongpass1",
		"userType": "volunteer",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var payload response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.False(t, payload.Success)
	require.Equal(t, "Invalid credentials", payload.Error.Message)
}

func TestVolunteerMatchAndHistoryFlow(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "volunteer@test.com", "volunteer")

	// The seeded profile matches the seeded event.
	w := doJSON(t, r, http.MethodGet, "/api/matching", token, nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var listPayload response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listPayload))
	matches, _ := listPayload.Data.([]any)
	require.NotEmpty(t, matches)

	first := matches[0].(map[string]any)
	eventID, _ := first["id"].(string)
	require.NotEmpty(t, eventID)

	// Accept the match.
	w = doJSON(t, r, http.MethodPost, "/api/matching", token, gin.H{"eventId": eventID})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	entry := decodeData(t, w)
	require.Equal(t, "Pending", entry["status"])

	// The accepted event no longer appears in matches.
	w = doJSON(t, r, http.MethodGet, "/api/matching", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listPayload))
	matches, _ = listPayload.Data.([]any)
	for _, m := range matches {
		require.NotEqual(t, eventID, m.(map[string]any)["id"])
	}

	// The acceptance shows up in history and notifications.
	w = doJSON(t, r, http.MethodGet, "/api/volunteer-history", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listPayload))
	history, _ := listPayload.Data.([]any)
	require.Len(t, history, 1)

	w = doJSON(t, r, http.MethodGet, "/api/notifications", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listPayload))
	notifications, _ := listPayload.Data.([]any)
	require.NotEmpty(t, notifications)
}

func TestOrganizationEventFlow(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "org@test.com", "organization")

	eventDate := time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	w := doJSON(t, r, http.MethodPost, "/api/events", token, gin.H{
		"eventName":        "River Cleanup",
		"eventDescription": "Pick up litter along the river banks",
		"location":         "Buffalo Bayou Park, Houston",
		"requiredSkills":   []string{"Teamwork"},
		"urgency":          "Medium",
		"eventDate":        eventDate,
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	created := decodeData(t, w)
	eventID, _ := created["id"].(string)
	require.NotEmpty(t, eventID)
	require.Equal(t, "org@test.com", created["orgEmail"])

	// Validation failures surface the rule message.
	w = doJSON(t, r, http.MethodPost, "/api/events", token, gin.H{
		"eventName":        "Bad Event",
		"eventDescription": "Too short",
		"location":         "Somewhere Rd",
		"requiredSkills":   []string{"Teamwork"},
		"urgency":          "Medium",
		"eventDate":        eventDate,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var payload response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Equal(t, "Event description must contain at least 5 words", payload.Error.Message)

	// Organizer view narrows to the caller's events.
	w = doJSON(t, r, http.MethodGet, "/api/events?type=organization", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	events, _ := payload.Data.([]any)
	require.Len(t, events, 2) // seeded event + the one just created

	// Dashboard stats count the new Active event.
	w = doJSON(t, r, http.MethodGet, "/api/organization/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeData(t, w)
	require.Equal(t, float64(2), stats["activeEvents"])

	// Update the event status.
	w = doJSON(t, r, http.MethodPut, "/api/events/"+eventID, token, gin.H{"status": "Cancelled"})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	updated := decodeData(t, w)
	require.Equal(t, "Cancelled", updated["status"])
}

func TestProfileEndpoints(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "volunteer@test.com", "volunteer")

	w := doJSON(t, r, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decodeData(t, w)
	require.Equal(t, "Tester Name", profile["fullName"])

	w = doJSON(t, r, http.MethodPut, "/api/profile", token, gin.H{
		"fullName": "Tester Name",
		"address1": "1232 Address St.",
		"city":     "Houston",
		"state":    "TX",
		"zipCode":  "99999",
		"skills":   []string{"Cooking"},
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	profile = decodeData(t, w)
	require.Equal(t, "99999", profile["zipCode"])
}

func TestRegisterEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "fresh@test.com",
		"password": "password123",
		"userType": "volunteer",
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	data := decodeData(t, w)
	require.NotEmpty(t, data["token"])

	// Duplicate registration conflicts.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "fresh@test.com",
		"password": "password456",
		"userType": "volunteer",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}
