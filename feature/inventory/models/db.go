package models

// ExtensionRecord represents the 'inventory_extensions' table.
type ExtensionRecord struct {
	ID          string `gorm:"column:id;primaryKey;size:191"`
	DisplayName string `gorm:"column:display_name;size:255;not null"`
	Version     string `gorm:"column:version;size:64;not null"`
}

// TableName overrides the table name.
func (ExtensionRecord) TableName() string {
	return "inventory_extensions"
}

// ManufacturerRecord represents the 'device_manufacturers' table.
type ManufacturerRecord struct {
	ID          string `gorm:"column:id;primaryKey;size:191"`
	DisplayName string `gorm:"column:display_name;size:255;not null"`
}

// TableName overrides the table name.
func (ManufacturerRecord) TableName() string {
	return "device_manufacturers"
}

// ClassificationRecord represents the 'device_classifications' table.
type ClassificationRecord struct {
	ID          string `gorm:"column:id;primaryKey;size:191"`
	DisplayName string `gorm:"column:display_name;size:255;not null"`
}

// TableName overrides the table name.
func (ClassificationRecord) TableName() string {
	return "device_classifications"
}

// ManufacturerExtension links a manufacturer to a declaring extension.
type ManufacturerExtension struct {
	ManufacturerID string `gorm:"column:manufacturer_id;primaryKey;size:191"`
	ExtensionID    string `gorm:"column:extension_id;primaryKey;size:191"`
}

// TableName overrides the table name.
func (ManufacturerExtension) TableName() string {
	return "manufacturer_extensions"
}

// ClassificationExtension links a classification to a declaring extension.
type ClassificationExtension struct {
	ClassificationID string `gorm:"column:classification_id;primaryKey;size:191"`
	ExtensionID      string `gorm:"column:extension_id;primaryKey;size:191"`
}

// TableName overrides the table name.
func (ClassificationExtension) TableName() string {
	return "classification_extensions"
}

// DeviceRecord represents the 'devices' table. Model identifiers are stored as JSON arrays.
type DeviceRecord struct {
	ID                       string `gorm:"column:id;primaryKey;size:191"`
	DisplayName              string `gorm:"column:display_name;size:255;not null"`
	ManufacturerID           string `gorm:"column:manufacturer_id;size:191;index"`
	ClassificationID         string `gorm:"column:classification_id;size:191;index"`
	ExtensionID              string `gorm:"column:extension_id;size:191;index"`
	PrimaryModelIdentifiers  string `gorm:"column:primary_model_identifiers;type:text"`
	ExtendedModelIdentifiers string `gorm:"column:extended_model_identifiers;type:text"`
}

// TableName overrides the table name.
func (DeviceRecord) TableName() string {
	return "devices"
}

// AllRecords returns one value of every table model, in migration order.
func AllRecords() []any {
	return []any{
		&ExtensionRecord{},
		&ManufacturerRecord{},
		&ClassificationRecord{},
		&ManufacturerExtension{},
		&ClassificationExtension{},
		&DeviceRecord{},
	}
}

// ExpectedColumns maps every inventory table to the columns it must have.
func ExpectedColumns() map[string][]string {
	return map[string][]string{
		"inventory_extensions":      {"id", "display_name", "version"},
		"device_manufacturers":      {"id", "display_name"},
		"device_classifications":    {"id", "display_name"},
		"manufacturer_extensions":   {"manufacturer_id", "extension_id"},
		"classification_extensions": {"classification_id", "extension_id"},
		"devices": {
			"id", "display_name", "manufacturer_id", "classification_id", "extension_id",
			"primary_model_identifiers", "extended_model_identifiers",
		},
	}
}
