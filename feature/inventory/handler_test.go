package inventory

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, defaults reconcile.Options) (*fiber.App, afero.Fs) {
	t.Helper()

	store, _ := newTestStore(t)
	mgr, fs := newTestManager(t, zap.NewNop(), map[string]string{
		"core.toml": extensionTOML("core", "Core", "1.0.0", "acme"),
	})

	feature := NewFeature(NewService(mgr, store, defaults, zap.NewNop()))
	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app, fs
}

func doRequest(t *testing.T, app *fiber.App, method, target string, out any) int {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, out))
	}
	return resp.StatusCode
}

func TestHandler_StagedAndLoad(t *testing.T) {
	app, _ := setupTestApp(t, reconcile.Options{})

	var staged []map[string]any
	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "GET", "/extensions/staged", &staged))
	require.Len(t, staged, 1)
	assert.Equal(t, "core", staged[0]["id"])
	assert.Equal(t, "1.0.0", staged[0]["version"])

	var report reconcile.Report
	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "POST", "/extensions/load?dry_run=true", &report))
	assert.True(t, report.DryRun)
	assert.Equal(t, 1, report.Summary.Loaded)

	var list []models.ExtensionSummary
	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "GET", "/extensions", &list))
	assert.Empty(t, list, "dry run writes nothing")

	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "POST", "/extensions/load", &report))
	assert.False(t, report.DryRun)

	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "GET", "/extensions", &list))
	assert.Equal(t, []models.ExtensionSummary{{ID: "core", DisplayName: "Core", Version: "1.0.0"}}, list)

	var detail models.ExtensionDetail
	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "GET", "/extensions/core", &detail))
	assert.Equal(t, 1, detail.DeviceCount)
}

func TestHandler_LoadOverride(t *testing.T) {
	app, fs := setupTestApp(t, reconcile.Options{})
	require.Equal(t, fiber.StatusOK, doRequest(t, app, "POST", "/extensions/load", nil))

	writeFiles(t, fs, map[string]string{"core.toml": extensionTOML("core", "Core", "1.1.0", "acme")})

	var report reconcile.Report
	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "POST", "/extensions/load", &report))
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, reconcile.ReasonOverrideDisabled, report.Actions[0].Reason)

	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "POST", "/extensions/load?override=true", &report))
	assert.Equal(t, reconcile.ActionReload, report.Actions[0].Type)
	assert.Equal(t, "1.1.0", report.Conflicts[0].VersionChange.StagedVersion.String())
}

func TestHandler_Errors(t *testing.T) {
	app, fs := setupTestApp(t, reconcile.Options{})

	var body map[string]any
	assert.Equal(t, fiber.StatusNotFound, doRequest(t, app, "GET", "/extensions/ghost", &body))
	assert.Contains(t, body["error"], "extension not found")

	writeFiles(t, fs, map[string]string{"broken.yaml": "extension_id: broken\n"})

	assert.Equal(t, fiber.StatusUnprocessableEntity, doRequest(t, app, "GET", "/extensions/staged", &body))
	assert.Equal(t, fiber.StatusInternalServerError, doRequest(t, app, "POST", "/extensions/load", &body))
	assert.Contains(t, body["error"], "broken")
}
