package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/samajseva/registration-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The validation paths below reject the request before any service call, so
// nil-backed services are enough.

func TestPhotoURLRejectsInvalidID(t *testing.T) {
	h := NewAdminHandler(nil, nil, services.NewPhotoService(nil, "", nil, services.ExpiryBounds{Default: 600, Min: 60, Max: 3600}))

	app := fiber.New()
	app.Get("/api/admin/registrations/:id/photo", h.PhotoURL)

	req := httptest.NewRequest("GET", "/api/admin/registrations/not-a-uuid/photo", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Invalid registration ID")
}

func TestToggleVerifiedRequiresBothFields(t *testing.T) {
	h := NewAdminHandler(nil, nil, nil)

	app := fiber.New()
	app.Patch("/api/admin/registrations", h.ToggleVerified)

	cases := []string{
		`{}`,
		`{"id":"7d9a2c9e-55c1-4e0f-9d3a-0a3f6f1f2b11"}`,
		`{"verified":true}`,
	}

	for _, payload := range cases {
		req := httptest.NewRequest("PATCH", "/api/admin/registrations", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "payload %s", payload)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, true, body["error"])
	}
}

func TestGetOptionsRejectsUnknownType(t *testing.T) {
	h := NewDropdownHandler(services.NewDropdownService(nil))

	app := fiber.New()
	app.Get("/api/dropdown-options", h.GetOptions)

	for _, q := range []string{"", "?type=countries", "?type=Cities"} {
		req := httptest.NewRequest("GET", "/api/dropdown-options"+q, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "query %q", q)
	}
}
