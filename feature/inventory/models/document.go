package models

// ExtensionDocument maps an extension definition file.
// The same keys are used for TOML and YAML.
type ExtensionDocument struct {
	ID              string                   `toml:"extension_id" yaml:"extension_id"`
	CommonName      string                   `toml:"extension_common_name" yaml:"extension_common_name"`
	Version         string                   `toml:"extension_version" yaml:"extension_version"`
	Manufacturers   []ManufacturerDocument   `toml:"manufacturers" yaml:"manufacturers"`
	Classifications []ClassificationDocument `toml:"classifications" yaml:"classifications"`
	Devices         []DeviceDocument         `toml:"devices" yaml:"devices"`
}

// ManufacturerDocument is a manufacturer entry.
type ManufacturerDocument struct {
	ID         string `toml:"id" yaml:"id"`
	CommonName string `toml:"common_name" yaml:"common_name"`
}

// ClassificationDocument is a classification entry.
type ClassificationDocument struct {
	ID         string `toml:"id" yaml:"id"`
	CommonName string `toml:"common_name" yaml:"common_name"`
}

// DeviceDocument is a device entry.
type DeviceDocument struct {
	TrueName                 string   `toml:"true_name" yaml:"true_name"`
	CommonName               string   `toml:"common_name" yaml:"common_name"`
	Manufacturer             string   `toml:"manufacturer" yaml:"manufacturer"`
	Classification           string   `toml:"classification" yaml:"classification"`
	PrimaryModelIdentifiers  []string `toml:"primary_model_identifiers" yaml:"primary_model_identifiers"`
	ExtendedModelIdentifiers []string `toml:"extended_model_identifiers" yaml:"extended_model_identifiers"`
}
