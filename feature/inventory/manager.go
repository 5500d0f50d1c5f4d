package inventory

import (
	"context"
	"errors"
	"fmt"

	"inventory-manager/core/reconcile"
	"inventory-manager/core/source"
	"inventory-manager/feature/inventory/models"

	"go.uber.org/zap"
)

// Manager stages extension definitions and loads them into a store.
// It is not safe for concurrent use; Service serialises access.
type Manager struct {
	source source.Source
	logger *zap.Logger
	staged *reconcile.StagingSet[models.InventoryExtension]
}

// NewManager creates a manager reading definitions from src.
func NewManager(src source.Source, logger *zap.Logger) *Manager {
	return &Manager{
		source: src,
		logger: logger,
		staged: reconcile.NewStagingSet[models.InventoryExtension](),
	}
}

// Stage discovers and parses every definition file, replacing the previously
// staged set. A file that fails to parse aborts staging. An extension whose ID
// is already staged is logged and skipped.
func (m *Manager) Stage(ctx context.Context) ([]models.InventoryExtension, error) {
	docs, err := m.source.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to discover extensions: %w", err)
	}

	staged := reconcile.NewStagingSet[models.InventoryExtension]()
	for _, doc := range docs {
		ext, err := ParseDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to stage %s: %w", doc.Name, err)
		}

		if err := staged.Stage(ext); err != nil {
			if !errors.Is(err, reconcile.ErrDuplicateIdentity) {
				return nil, err
			}
			m.logger.Error("Extension already staged, skipping",
				zap.String("id", ext.Meta.ID.String()),
				zap.String("file", doc.Name),
			)
			continue
		}

		m.logger.Info("Staging extension",
			zap.String("id", ext.Meta.ID.String()),
			zap.String("file", doc.Name),
		)
	}

	m.staged = staged
	return staged.Entities(), nil
}

// Staged returns the extensions staged by the last successful Stage call.
func (m *Manager) Staged() []models.InventoryExtension {
	return m.staged.Entities()
}

// LoadExtensions reconciles the staged extensions against store.
func (m *Manager) LoadExtensions(ctx context.Context, store reconcile.Store[models.InventoryExtension], opts reconcile.Options) (*reconcile.Report, error) {
	return reconcile.LoadAll(ctx, store, m.staged.Entities(), opts, m.logger.With(zap.String("kind", "extension")))
}
