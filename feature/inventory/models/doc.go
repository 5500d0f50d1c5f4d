// Package models defines the inventory extension types.
//
// There are three families of types:
//   - Domain types (InventoryExtension, Manufacturer, Classification, Device) produced by the parser.
//   - Document types (ExtensionDocument and friends) mapping the TOML/YAML definition files.
//   - Record types (ExtensionRecord and friends) mapping the database tables through GORM.
package models
