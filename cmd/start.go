package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"inventory-manager/core/loader"
	"inventory-manager/core/logger"
	"inventory-manager/core/middleware/auth"
	"inventory-manager/core/middleware/rayid"
	"inventory-manager/core/server"

	"inventory-manager/feature/integrity"
	"inventory-manager/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "inventory-manager/docs/swagger"
)

// @title Inventory Manager API
// @version 1.0
// @description API for staging and loading device inventory extensions.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := newRuntime()
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		db, err := rt.connect()
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		logg.Info("Connected to inventory database", zap.String("driver", rt.cfg.Database.Driver))

		svc := rt.inventoryService(db)
		if err := svc.Migrate(cmd.Context()); err != nil {
			logg.Fatal("Failed to migrate database", zap.Error(err))
		}

		app, err := newApp(logg, rt.cfg.Server,
			inventory.NewFeature(svc),
			integrity.NewFeature(integrity.NewService(
				rt.client, rt.cfg.Storage.Bucket, rt.cfg.Source.Prefix, rt.source, db, logg,
			)),
		)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("address", rt.cfg.Server.Address()),
				zap.Bool("auth", rt.cfg.Server.AuthEnabled()),
			)
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// newApp builds the HTTP application with its middleware chain and features.
func newApp(logg *zap.Logger, cfg server.Config, features ...loader.Feature) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	mgr := loader.NewManager(logg)
	for _, f := range features {
		mgr.Register(f)
	}

	// RayID must be first to trace everything.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Swagger stays public.
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: cfg.ApiKey}))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}
