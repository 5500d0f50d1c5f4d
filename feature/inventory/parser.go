package inventory

import (
	"bytes"
	"errors"
	"fmt"

	"inventory-manager/core/reconcile"
	"inventory-manager/core/source"
	"inventory-manager/core/version"
	"inventory-manager/feature/inventory/models"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidDocument is matched by every validation failure.
var ErrInvalidDocument = errors.New("invalid extension document")

// ValidationError describes a definition file that decoded but is not a valid extension.
type ValidationError struct {
	Document string
	Problem  string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid extension document %s: %s", e.Document, e.Problem)
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// ParseDocument decodes and validates one definition file. Unknown keys are rejected.
func ParseDocument(doc source.Document) (models.InventoryExtension, error) {
	var raw models.ExtensionDocument

	switch doc.Format {
	case source.FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(doc.Data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil {
			return models.InventoryExtension{}, fmt.Errorf("failed to decode %s: %w", doc.Name, err)
		}
	case source.FormatYAML:
		if err := yaml.UnmarshalWithOptions(doc.Data, &raw, yaml.DisallowUnknownField()); err != nil {
			return models.InventoryExtension{}, fmt.Errorf("failed to decode %s: %w", doc.Name, err)
		}
	default:
		return models.InventoryExtension{}, fmt.Errorf("%w: %s", source.ErrUnsupportedFormat, doc.Name)
	}

	return convert(doc.Name, raw)
}

// convert validates a decoded document and builds the domain extension.
func convert(name string, raw models.ExtensionDocument) (models.InventoryExtension, error) {
	invalid := func(format string, args ...any) (models.InventoryExtension, error) {
		return models.InventoryExtension{}, &ValidationError{Document: name, Problem: fmt.Sprintf(format, args...)}
	}

	switch {
	case raw.ID == "":
		return invalid("extension_id is required")
	case raw.CommonName == "":
		return invalid("extension_common_name is required")
	case raw.Version == "":
		return invalid("extension_version is required")
	}

	v, err := version.Parse(raw.Version)
	if err != nil {
		return invalid("%v", err)
	}

	ext := models.InventoryExtension{
		Meta: reconcile.Metadata{
			ID:          reconcile.ID(raw.ID),
			DisplayName: raw.CommonName,
			Version:     v,
		},
		Manufacturers:   make([]models.Manufacturer, 0, len(raw.Manufacturers)),
		Classifications: make([]models.Classification, 0, len(raw.Classifications)),
		Devices:         make([]models.Device, 0, len(raw.Devices)),
	}

	seen := make(map[string]struct{})
	for _, m := range raw.Manufacturers {
		if m.ID == "" || m.CommonName == "" {
			return invalid("manufacturer entries need id and common_name")
		}
		if _, dup := seen[m.ID]; dup {
			return invalid("duplicate manufacturer %q", m.ID)
		}
		seen[m.ID] = struct{}{}
		ext.Manufacturers = append(ext.Manufacturers, models.Manufacturer{
			ID:          m.ID,
			DisplayName: m.CommonName,
			Extensions:  []string{raw.ID},
		})
	}

	seen = make(map[string]struct{})
	for _, c := range raw.Classifications {
		if c.ID == "" || c.CommonName == "" {
			return invalid("classification entries need id and common_name")
		}
		if _, dup := seen[c.ID]; dup {
			return invalid("duplicate classification %q", c.ID)
		}
		seen[c.ID] = struct{}{}
		ext.Classifications = append(ext.Classifications, models.Classification{
			ID:          c.ID,
			DisplayName: c.CommonName,
			Extensions:  []string{raw.ID},
		})
	}

	seen = make(map[string]struct{})
	for _, d := range raw.Devices {
		if d.TrueName == "" || d.CommonName == "" || d.Manufacturer == "" || d.Classification == "" {
			return invalid("device entries need true_name, common_name, manufacturer and classification")
		}
		id := models.DeviceID(raw.ID, d.Manufacturer, d.Classification, d.TrueName)
		if _, dup := seen[id]; dup {
			return invalid("duplicate device %q", id)
		}
		seen[id] = struct{}{}
		ext.Devices = append(ext.Devices, models.Device{
			ID:                       id,
			DisplayName:              d.CommonName,
			Manufacturer:             d.Manufacturer,
			Classification:           d.Classification,
			Extension:                raw.ID,
			PrimaryModelIdentifiers:  nonNil(d.PrimaryModelIdentifiers),
			ExtendedModelIdentifiers: nonNil(d.ExtendedModelIdentifiers),
		})
	}

	return ext, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
