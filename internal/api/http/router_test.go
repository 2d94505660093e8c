package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hall-complaints/internal/api/http/handlers"
	"github.com/spec-kit/hall-complaints/internal/auth"
	"github.com/spec-kit/hall-complaints/internal/config"
	"github.com/spec-kit/hall-complaints/internal/events"
	"github.com/spec-kit/hall-complaints/internal/observability"
	"github.com/spec-kit/hall-complaints/internal/service"
	"github.com/spec-kit/hall-complaints/internal/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	complaintStore := store.NewMemoryStore(config.StoreConfig{CounterStart: 10000})
	dispatcher := events.NewInMemoryDispatcher()
	complaintService := service.NewComplaintService(service.ComplaintDependencies{
		Store:      complaintStore,
		Dispatcher: dispatcher,
	})
	authService, err := service.NewAuthService(config.AuthConfig{
		JWTSecret:       "test-secret",
		SessionTTLHours: 24,
		AdminEmail:      "admin@hallcomplaint.com",
		AdminPassword:   "12345",
		BcryptCost:      4,
	})
	require.NoError(t, err)

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:            handlers.NewHealthHandler("hall-complaints", "test", complaintStore),
		Complaints:        handlers.NewComplaintsHandler(complaintService),
		Admin:             handlers.NewAdminHandler(complaintService),
		Auth:              handlers.NewAuthHandler(authService),
		SessionMiddleware: auth.NewSessionMiddleware(authService.TokenManager()),
	})
	return app
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == auth.SessionCookie {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func login(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/auth/login", fiber.Map{
		"email":    "admin@hallcomplaint.com",
		"password": "12345",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return sessionCookie(t, resp)
}

func submit(t *testing.T, app *fiber.App, room, category, description string) string {
	t.Helper()
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/complaints", fiber.Map{
		"room_number": room,
		"category":    category,
		"description": description,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeBody(t, resp)["data"].(map[string]any)
	return data["id"].(string)
}

func TestSubmitAndTrack(t *testing.T) {
	app := newTestApp(t)

	id := submit(t, app, "101", "Plumbing", "Leaking tap in the bathroom")
	require.Equal(t, "TICKET-10001", id)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/complaints/"+id, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]any)
	require.Equal(t, "Reported", data["status"])
	require.Equal(t, "101", data["room_number"])
}

func TestSubmitValidationError(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/complaints", fiber.Map{
		"room_number": "551",
		"category":    "Plumbing",
		"description": "Leaking tap in the bathroom",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errBody := decodeBody(t, resp)["error"].(map[string]any)
	require.Equal(t, "VALIDATION_FAILED", errBody["code"])
	require.Contains(t, errBody["message"], "Invalid room number")
}

func TestTrackUnknownID(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/complaints/TICKET-404", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminRequiresSession(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/complaints", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/auth/login", fiber.Map{
		"email":    "admin@hallcomplaint.com",
		"password": "wrong",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	errBody := decodeBody(t, resp)["error"].(map[string]any)
	require.Equal(t, "Invalid credentials.", errBody["message"])
}

func TestAdminWorkflow(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	submit(t, app, "101", "Plumbing", "Leaking tap in the bathroom")
	id := submit(t, app, "230", "Electrical", "Socket sparks when used")

	t.Run("list with filters", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/complaints?category=Electrical", nil)
		req.AddCookie(cookie)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		items := decodeBody(t, resp)["data"].([]any)
		require.Len(t, items, 1)
		require.Equal(t, id, items[0].(map[string]any)["id"])
	})

	t.Run("update status", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPatch, fmt.Sprintf("/admin/complaints/%s/status", id), fiber.Map{"status": "In Progress"})
		req.AddCookie(cookie)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := decodeBody(t, resp)["data"].(map[string]any)
		require.Equal(t, "In Progress", data["status"])
	})

	t.Run("update status of unknown id", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPatch, "/admin/complaints/TICKET-404/status", fiber.Map{"status": "Resolved"})
		req.AddCookie(cookie)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/admin/complaints/"+id, nil)
		req.AddCookie(cookie)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		track, err := app.Test(httptest.NewRequest(http.MethodGet, "/complaints/"+id, nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, track.StatusCode)
	})
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newTestApp(t)
	login(t, app)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/auth/logout", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookie(t, resp)
	require.Empty(t, cookie.Value)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	live, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/live", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, live.StatusCode)

	ready, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, ready.StatusCode)
}
