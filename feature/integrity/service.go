package integrity

import (
	"context"

	"inventory-manager/core/source"
	"inventory-manager/core/storage"
	"inventory-manager/feature/integrity/checks"
	"inventory-manager/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	source source.Source
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. prefix is the object prefix
// holding extension definitions; src is the configured definition source.
func NewService(client storage.Client, bucket, prefix string, src source.Source, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		source: src,
		db:     db,
		logger: logger,
	}
}

// CheckStructure returns the missing bucket prefixes.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, s.prefix)
}

// FixStructure creates the missing prefixes.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckSchema compares the database with the inventory tables.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, models.ExpectedColumns())
}

// CheckDefinitions parses every definition file.
func (s *Service) CheckDefinitions(ctx context.Context) (*checks.DefinitionsReport, error) {
	return checks.CheckDefinitions(ctx, s.source)
}
