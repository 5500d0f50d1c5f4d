package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"inventory-manager/core/middleware/auth"
	"inventory-manager/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type pingFeature struct {
	err error
}

func (f *pingFeature) Name() string    { return "ping" }
func (f *pingFeature) IsEnabled() bool { return true }
func (f *pingFeature) Load(app fiber.Router) error {
	if f.err != nil {
		return f.err
	}
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return nil
}

func TestNewApp_SwaggerIsPublic(t *testing.T) {
	app, err := newApp(zap.NewNop(), server.Config{ApiKey: "secret"}, &pingFeature{})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/swagger/doc.json", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Contains(t, doc.Paths, "/extensions/load")
	assert.Contains(t, doc.Paths, "/integrity/definitions")
}

func TestNewApp_FeaturesRequireKey(t *testing.T) {
	app, err := newApp(zap.NewNop(), server.Config{ApiKey: "secret"}, &pingFeature{})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(auth.Header, "secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestNewApp_FeatureError(t *testing.T) {
	_, err := newApp(zap.NewNop(), server.Config{}, &pingFeature{err: errors.New("route conflict")})
	assert.ErrorContains(t, err, "route conflict")
}
