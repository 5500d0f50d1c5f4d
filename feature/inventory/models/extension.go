package models

import (
	"strings"

	"inventory-manager/core/reconcile"
)

// InventoryExtension is a parsed extension definition.
type InventoryExtension struct {
	Meta            reconcile.Metadata `json:"metadata"`
	Manufacturers   []Manufacturer     `json:"manufacturers"`
	Classifications []Classification   `json:"classifications"`
	Devices         []Device           `json:"devices"`
}

// Metadata implements reconcile.Entity.
func (e InventoryExtension) Metadata() reconcile.Metadata {
	return e.Meta
}

// Manufacturer is a device manufacturer. Manufacturers are shared between
// extensions; Extensions lists every extension declaring it.
type Manufacturer struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Extensions  []string `json:"extensions"`
}

// Classification is a category of device.
type Classification struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Extensions  []string `json:"extensions"`
}

// Device is a single device model.
type Device struct {
	ID                       string   `json:"id"`
	DisplayName              string   `json:"display_name"`
	Manufacturer             string   `json:"manufacturer"`
	Classification           string   `json:"classification"`
	Extension                string   `json:"extension"`
	PrimaryModelIdentifiers  []string `json:"primary_model_identifiers"`
	ExtendedModelIdentifiers []string `json:"extended_model_identifiers"`
}

// DeviceID builds the identity of a device. The extension is part of the
// identity so that two extensions can describe the same model independently.
func DeviceID(extension, manufacturer, classification, trueName string) string {
	return strings.Join([]string{extension, manufacturer, classification, trueName}, "/")
}

// ExtensionSummary is the API view of a loaded extension.
type ExtensionSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Version     string `json:"version"`
}

// ExtensionDetail is the API view of one loaded extension and its payload.
type ExtensionDetail struct {
	ExtensionSummary
	Manufacturers   []string `json:"manufacturers"`
	Classifications []string `json:"classifications"`
	Devices         []Device `json:"devices"`
	DeviceCount     int      `json:"device_count"`
}
