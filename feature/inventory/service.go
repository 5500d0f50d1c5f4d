package inventory

import (
	"context"
	"fmt"
	"sync"

	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service coordinates staging and loading of extensions.
// Passes are serialised; identical concurrent load requests share one pass.
type Service struct {
	manager  *Manager
	store    *Store
	logger   *zap.Logger
	defaults reconcile.Options

	mu    sync.Mutex
	group singleflight.Group
}

// NewService creates a new inventory service.
func NewService(manager *Manager, store *Store, defaults reconcile.Options, logger *zap.Logger) *Service {
	return &Service{
		manager:  manager,
		store:    store,
		logger:   logger,
		defaults: defaults,
	}
}

// Defaults returns the options used when a request does not set them.
func (s *Service) Defaults() reconcile.Options {
	return s.defaults
}

// Migrate creates the inventory tables.
func (s *Service) Migrate(ctx context.Context) error {
	return s.store.Migrate(ctx)
}

// Stage re-reads every definition file and returns the staged extensions.
func (s *Service) Stage(ctx context.Context) ([]models.InventoryExtension, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.manager.Stage(ctx)
}

// LoadExtensions stages the definition files and reconciles them against the database.
func (s *Service) LoadExtensions(ctx context.Context, opts reconcile.Options) (*reconcile.Report, error) {
	key := fmt.Sprintf("load:override=%t:dry_run=%t", opts.Override, opts.DryRun)

	v, err, shared := s.group.Do(key, func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, err := s.manager.Stage(ctx); err != nil {
			return nil, err
		}
		return s.manager.LoadExtensions(ctx, s.store, opts)
	})
	if shared {
		s.logger.Debug("Joined in-flight load", zap.String("key", key))
	}

	report, _ := v.(*reconcile.Report)
	return report, err
}

// ListExtensions returns the loaded extensions.
func (s *Service) ListExtensions(ctx context.Context) ([]models.ExtensionSummary, error) {
	return s.store.ListExtensions(ctx)
}

// GetExtension returns one loaded extension.
func (s *Service) GetExtension(ctx context.Context, id string) (*models.ExtensionDetail, error) {
	return s.store.GetExtension(ctx, id)
}
