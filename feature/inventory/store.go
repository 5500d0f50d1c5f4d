package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"inventory-manager/core/reconcile"
	"inventory-manager/core/version"
	"inventory-manager/feature/inventory/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrExtensionNotFound is returned when no loaded extension has the requested ID.
var ErrExtensionNotFound = errors.New("extension not found")

// Store persists extensions through GORM. It implements reconcile.Store.
type Store struct {
	db *gorm.DB
}

var _ reconcile.Store[models.InventoryExtension] = (*Store)(nil)

// NewStore creates a store backed by db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the inventory tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(models.AllRecords()...); err != nil {
		return fmt.Errorf("failed to migrate inventory tables: %w", err)
	}
	return nil
}

// ListLoaded returns the metadata of every loaded extension ordered by ID.
func (s *Store) ListLoaded(ctx context.Context) ([]reconcile.Metadata, error) {
	var records []models.ExtensionRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query extensions: %w", err)
	}

	loaded := make([]reconcile.Metadata, 0, len(records))
	for _, r := range records {
		v, err := version.Parse(r.Version)
		if err != nil {
			return nil, fmt.Errorf("loaded extension %s: %w", r.ID, err)
		}
		loaded = append(loaded, reconcile.Metadata{
			ID:          reconcile.ID(r.ID),
			DisplayName: r.DisplayName,
			Version:     v,
		})
	}
	return loaded, nil
}

// Load commits a new extension and its payload in one transaction.
func (s *Store) Load(ctx context.Context, ext models.InventoryExtension) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := models.ExtensionRecord{
			ID:          ext.Meta.ID.String(),
			DisplayName: ext.Meta.DisplayName,
			Version:     ext.Meta.Version.String(),
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to insert extension: %w", err)
		}
		return insertPayload(tx, ext)
	})
}

// Reload replaces a loaded extension in one transaction. The previous payload
// is detached, manufacturers and classifications left without any declaring
// extension or device are removed, and the new payload is inserted.
func (s *Store) Reload(ctx context.Context, ext models.InventoryExtension) error {
	id := ext.Meta.ID.String()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.ExtensionRecord
		if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrExtensionNotFound, id)
			}
			return fmt.Errorf("failed to read extension: %w", err)
		}

		if err := tx.Where("extension_id = ?", id).Delete(&models.ManufacturerExtension{}).Error; err != nil {
			return fmt.Errorf("failed to detach manufacturers: %w", err)
		}
		if err := tx.Where("extension_id = ?", id).Delete(&models.ClassificationExtension{}).Error; err != nil {
			return fmt.Errorf("failed to detach classifications: %w", err)
		}
		if err := tx.Where("extension_id = ?", id).Delete(&models.DeviceRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete devices: %w", err)
		}

		if err := tx.
			Where("id NOT IN (?)", tx.Model(&models.ManufacturerExtension{}).Select("manufacturer_id")).
			Where("id NOT IN (?)", tx.Model(&models.DeviceRecord{}).Select("manufacturer_id")).
			Delete(&models.ManufacturerRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete orphaned manufacturers: %w", err)
		}
		if err := tx.
			Where("id NOT IN (?)", tx.Model(&models.ClassificationExtension{}).Select("classification_id")).
			Where("id NOT IN (?)", tx.Model(&models.DeviceRecord{}).Select("classification_id")).
			Delete(&models.ClassificationRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete orphaned classifications: %w", err)
		}

		if err := tx.Model(&existing).Updates(map[string]any{
			"display_name": ext.Meta.DisplayName,
			"version":      ext.Meta.Version.String(),
		}).Error; err != nil {
			return fmt.Errorf("failed to update extension: %w", err)
		}

		return insertPayload(tx, ext)
	})
}

// insertPayload upserts manufacturers and classifications, attaches them to
// the extension and inserts its devices.
func insertPayload(tx *gorm.DB, ext models.InventoryExtension) error {
	id := ext.Meta.ID.String()
	upsertName := clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name"}),
	}

	for _, m := range ext.Manufacturers {
		rec := models.ManufacturerRecord{ID: m.ID, DisplayName: m.DisplayName}
		if err := tx.Clauses(upsertName).Create(&rec).Error; err != nil {
			return fmt.Errorf("failed to upsert manufacturer %s: %w", m.ID, err)
		}
		link := models.ManufacturerExtension{ManufacturerID: m.ID, ExtensionID: id}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return fmt.Errorf("failed to attach manufacturer %s: %w", m.ID, err)
		}
	}

	for _, c := range ext.Classifications {
		rec := models.ClassificationRecord{ID: c.ID, DisplayName: c.DisplayName}
		if err := tx.Clauses(upsertName).Create(&rec).Error; err != nil {
			return fmt.Errorf("failed to upsert classification %s: %w", c.ID, err)
		}
		link := models.ClassificationExtension{ClassificationID: c.ID, ExtensionID: id}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return fmt.Errorf("failed to attach classification %s: %w", c.ID, err)
		}
	}

	for _, d := range ext.Devices {
		rec, err := toDeviceRecord(d)
		if err != nil {
			return err
		}
		if err := tx.Create(&rec).Error; err != nil {
			return fmt.Errorf("failed to insert device %s: %w", d.ID, err)
		}
	}

	return nil
}

func toDeviceRecord(d models.Device) (models.DeviceRecord, error) {
	primary, err := json.Marshal(d.PrimaryModelIdentifiers)
	if err != nil {
		return models.DeviceRecord{}, fmt.Errorf("failed to encode identifiers of %s: %w", d.ID, err)
	}
	extended, err := json.Marshal(d.ExtendedModelIdentifiers)
	if err != nil {
		return models.DeviceRecord{}, fmt.Errorf("failed to encode identifiers of %s: %w", d.ID, err)
	}

	return models.DeviceRecord{
		ID:                       d.ID,
		DisplayName:              d.DisplayName,
		ManufacturerID:           d.Manufacturer,
		ClassificationID:         d.Classification,
		ExtensionID:              d.Extension,
		PrimaryModelIdentifiers:  string(primary),
		ExtendedModelIdentifiers: string(extended),
	}, nil
}

func fromDeviceRecord(r models.DeviceRecord) (models.Device, error) {
	d := models.Device{
		ID:             r.ID,
		DisplayName:    r.DisplayName,
		Manufacturer:   r.ManufacturerID,
		Classification: r.ClassificationID,
		Extension:      r.ExtensionID,
	}
	if err := json.Unmarshal([]byte(r.PrimaryModelIdentifiers), &d.PrimaryModelIdentifiers); err != nil {
		return d, fmt.Errorf("failed to decode identifiers of %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(r.ExtendedModelIdentifiers), &d.ExtendedModelIdentifiers); err != nil {
		return d, fmt.Errorf("failed to decode identifiers of %s: %w", r.ID, err)
	}
	return d, nil
}

// ListExtensions returns every loaded extension ordered by ID.
func (s *Store) ListExtensions(ctx context.Context) ([]models.ExtensionSummary, error) {
	var records []models.ExtensionRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query extensions: %w", err)
	}

	out := make([]models.ExtensionSummary, 0, len(records))
	for _, r := range records {
		out = append(out, models.ExtensionSummary{ID: r.ID, DisplayName: r.DisplayName, Version: r.Version})
	}
	return out, nil
}

// GetExtension returns a loaded extension with its manufacturers, classifications and devices.
func (s *Store) GetExtension(ctx context.Context, id string) (*models.ExtensionDetail, error) {
	db := s.db.WithContext(ctx)

	var record models.ExtensionRecord
	if err := db.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrExtensionNotFound, id)
		}
		return nil, fmt.Errorf("failed to read extension: %w", err)
	}

	detail := &models.ExtensionDetail{
		ExtensionSummary: models.ExtensionSummary{
			ID:          record.ID,
			DisplayName: record.DisplayName,
			Version:     record.Version,
		},
		Manufacturers:   []string{},
		Classifications: []string{},
		Devices:         []models.Device{},
	}

	if err := db.Model(&models.ManufacturerExtension{}).
		Where("extension_id = ?", id).Order("manufacturer_id").
		Pluck("manufacturer_id", &detail.Manufacturers).Error; err != nil {
		return nil, fmt.Errorf("failed to read manufacturers: %w", err)
	}
	if err := db.Model(&models.ClassificationExtension{}).
		Where("extension_id = ?", id).Order("classification_id").
		Pluck("classification_id", &detail.Classifications).Error; err != nil {
		return nil, fmt.Errorf("failed to read classifications: %w", err)
	}

	var devices []models.DeviceRecord
	if err := db.Where("extension_id = ?", id).Order("id").Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("failed to read devices: %w", err)
	}
	for _, r := range devices {
		d, err := fromDeviceRecord(r)
		if err != nil {
			return nil, err
		}
		detail.Devices = append(detail.Devices, d)
	}
	detail.DeviceCount = len(detail.Devices)

	return detail, nil
}
