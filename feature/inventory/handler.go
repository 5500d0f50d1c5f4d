package inventory

import (
	"errors"

	"inventory-manager/core/logger"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/utils"
	"inventory-manager/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for extensions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Referenced by the Swagger annotations below.
	var _ = models.ExtensionDetail{}
	return &Handler{service: service}
}

// RegisterRoutes registers the extension routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/extensions")
	group.Get("/", h.HandleListExtensions)
	group.Get("/staged", h.HandleListStaged)
	group.Post("/load", h.HandleLoadExtensions)
	group.Get("/:id", h.HandleGetExtension)
}

// HandleListExtensions returns every loaded extension.
// @Summary List Loaded Extensions
// @Description Returns the id, display name and version of every extension committed to the database, ordered by id.
// @Tags extensions
// @Produce json
// @Success 200 {array} models.ExtensionSummary
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /extensions [get]
func (h *Handler) HandleListExtensions(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	list, err := h.service.ListExtensions(c.Context())
	if err != nil {
		l.Error("Listing extensions failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(list)
}

// HandleListStaged re-reads the definition files and returns their metadata.
// @Summary Stage Extensions
// @Description Discovers and parses every definition file from the configured source and returns the staged metadata. Nothing is written to the database.
// @Tags extensions
// @Produce json
// @Success 200 {array} reconcile.Metadata
// @Failure 422 {object} map[string]string "Invalid Definition File"
// @Router /extensions/staged [get]
func (h *Handler) HandleListStaged(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	staged, err := h.service.Stage(c.Context())
	if err != nil {
		l.Error("Staging extensions failed", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	out := make([]reconcile.Metadata, 0, len(staged))
	for _, ext := range staged {
		out = append(out, ext.Metadata())
	}
	return c.JSON(out)
}

// HandleGetExtension returns one loaded extension with its payload.
// @Summary Get Extension
// @Description Returns a loaded extension with its manufacturers, classifications and devices.
// @Tags extensions
// @Produce json
// @Param id path string true "Extension ID"
// @Success 200 {object} models.ExtensionDetail
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /extensions/{id} [get]
func (h *Handler) HandleGetExtension(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c)

	detail, err := h.service.GetExtension(c.Context(), id)
	if err != nil {
		if errors.Is(err, ErrExtensionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Reading extension failed", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(detail)
}

// HandleLoadExtensions runs a reconciliation pass and returns its report.
// The override and dry_run query parameters fall back to the configured defaults.
// @Summary Load Extensions
// @Description Restages the definition files and reconciles them against the database. New extensions are loaded, conflicting ones are reloaded or skipped. On failure the partial report is returned under "report".
// @Tags extensions
// @Produce json
// @Param override query bool false "Reload extensions whose version changed"
// @Param dry_run query bool false "Compute the report without writing"
// @Success 200 {object} reconcile.Report
// @Failure 500 {object} map[string]interface{} "Error and partial report"
// @Router /extensions/load [post]
func (h *Handler) HandleLoadExtensions(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	opts := h.service.Defaults()
	if v := c.Query("override"); v != "" {
		opts.Override = utils.ToBool(v)
	}
	if v := c.Query("dry_run"); v != "" {
		opts.DryRun = utils.ToBool(v)
	}

	report, err := h.service.LoadExtensions(c.Context(), opts)
	if err != nil {
		l.Error("Loading extensions failed", zap.Error(err))
		body := fiber.Map{"error": err.Error()}
		if report != nil {
			body["report"] = report
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}

	l.Info("Extensions loaded",
		zap.Int("loaded", report.Summary.Loaded),
		zap.Int("reloaded", report.Summary.Reloaded),
		zap.Int("skipped", report.Summary.Skipped),
		zap.Bool("dry_run", report.DryRun),
	)
	return c.JSON(report)
}
