package integrity

import (
	"inventory-manager/core/logger"
	"inventory-manager/core/utils"
	"inventory-manager/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Referenced by the Swagger annotations below.
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/definitions", h.HandleDefinitionsCheck)
}

// HandleIntegrityCheck runs every check and combines the results.
// A failing check is reported in place; the response is always 200.
// @Summary Run All Integrity Checks
// @Description Performs the structure, schema and definitions checks and combines their reports.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]any)

	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = fiber.Map{"status": "ok", "missing": missing}
	}

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if defs, err := h.service.CheckDefinitions(ctx); err != nil {
		report["definitions"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["definitions"] = defs
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes the bucket layout.
// @Summary Check Storage Structure
// @Description Checks that the bucket and the extension prefix exist. With fix=true the missing prefix placeholder is created.
// @Tags integrity
// @Produce json
// @Param fix query bool false "Create missing folders"
// @Success 200 {object} map[string]interface{} "Status and missing folders"
// @Failure 500 {object} map[string]interface{} "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ToBool(c.Query("fix"))

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleSchemaCheck checks the inventory tables.
// @Summary Check Database Schema
// @Description Compares the live columns of every inventory table with the expected set.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleDefinitionsCheck parses every definition file.
// @Summary Check Definition Files
// @Description Parses every discovered definition file without staging and lists the invalid ones with their errors.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.DefinitionsReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/definitions [get]
func (h *Handler) HandleDefinitionsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDefinitions(c.Context())
	if err != nil {
		l.Error("Definitions check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(report.Invalid) > 0 {
		l.Warn("Invalid definition files detected", zap.Int("invalid", len(report.Invalid)))
	}
	return c.JSON(report)
}
