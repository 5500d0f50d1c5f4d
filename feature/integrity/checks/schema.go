package checks

import (
	"fmt"
	"sort"

	"inventory-manager/core/database"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a schema check.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport is the outcome for one table.
type TableReport struct {
	Exists         bool     `json:"exists"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSchema compares the live database against expected, a map of table
// name to required column names.
func CheckSchema(db *gorm.DB, expected map[string][]string) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport, len(expected)),
		Errors:  []string{},
	}

	tables := make([]string, 0, len(expected))
	for table := range expected {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	for _, table := range tables {
		tbl := TableReport{MissingColumns: []string{}, Status: "ok"}

		if !database.HasTable(db, table) {
			tbl.Status = "error"
			tbl.MissingColumns = expected[table]
			report.Tables[table] = tbl
			report.Matched = false
			continue
		}
		tbl.Exists = true

		cols, err := database.GetTableColumns(db, table)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			tbl.Status = "error"
			report.Tables[table] = tbl
			report.Matched = false
			continue
		}

		if missing := database.MissingColumns(cols, expected[table]); len(missing) > 0 {
			tbl.MissingColumns = missing
			tbl.Status = "error"
			report.Matched = false
		}
		report.Tables[table] = tbl
	}

	return report, nil
}
