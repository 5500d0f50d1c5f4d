// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (production) or SQLite
// (local runs and tests) connections based on the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and pings the
// database before returning. It knows nothing about the inventory schema.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table on either dialect. The integrity
// feature uses it to verify that the inventory tables match the expected models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "inventory_extensions")
package database
