package cmd

import (
	"fmt"

	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/logger"
	"inventory-manager/core/source"
	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles the dependencies shared by the commands.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	client storage.Client
	source source.Source
}

// newRuntime loads configuration and builds the logger, storage client and
// definition source.
func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	src, err := source.New(cfg.Source, client, cfg.Storage.Bucket, logg)
	if err != nil {
		return nil, fmt.Errorf("failed to create extension source: %w", err)
	}

	return &runtime{cfg: cfg, logger: logg, client: client, source: src}, nil
}

// connect opens the configured database.
func (r *runtime) connect() (*gorm.DB, error) {
	db, err := database.Connect(r.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}
	return db, nil
}

// inventoryService builds the inventory service on top of db.
func (r *runtime) inventoryService(db *gorm.DB) *inventory.Service {
	mgr := inventory.NewManager(r.source, r.logger)
	return inventory.NewService(mgr, inventory.NewStore(db), r.cfg.Reconcile.Options(), r.logger)
}
