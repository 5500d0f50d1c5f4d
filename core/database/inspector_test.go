package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE inventory_extensions (id TEXT PRIMARY KEY, display_name TEXT NOT NULL, version TEXT)").Error
	require.NoError(t, err)

	assert.True(t, HasTable(db, "inventory_extensions"))
	assert.False(t, HasTable(db, "devices"))

	columns, err := GetTableColumns(db, "inventory_extensions")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	byName := make(map[string]ColumnInfo)
	for _, col := range columns {
		byName[col.Field] = col
	}

	assert.Equal(t, "text", byName["id"].Type)
	assert.Equal(t, "PRI", byName["id"].Key)
	assert.Equal(t, "NO", byName["display_name"].Null)
	assert.Equal(t, "YES", byName["version"].Null)

	// PRAGMA table_info returns no rows for unknown tables
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	columns := []ColumnInfo{{Field: "id"}, {Field: "display_name"}}

	assert.Empty(t, MissingColumns(columns, []string{"id", "display_name"}))
	assert.Equal(t, []string{"extension_id", "version"}, MissingColumns(columns, []string{"version", "id", "extension_id"}))
}
