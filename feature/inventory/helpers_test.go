package inventory

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"inventory-manager/core/database"
	"inventory-manager/core/source"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	store := NewStore(db)
	require.NoError(t, store.Migrate(context.Background()))
	return store, db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	})
	db, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

// extensionTOML renders a definition with one device per manufacturer.
func extensionTOML(id, name, ver string, manufacturers ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "extension_id = %q\nextension_common_name = %q\nextension_version = %q\n\n", id, name, ver)
	for _, m := range manufacturers {
		fmt.Fprintf(&b, "[[manufacturers]]\nid = %q\ncommon_name = %q\n\n", m, strings.ToUpper(m))
	}
	b.WriteString("[[classifications]]\nid = \"laptop\"\ncommon_name = \"Laptop\"\n\n")
	for _, m := range manufacturers {
		fmt.Fprintf(&b, "[[devices]]\ntrue_name = \"%s-%s\"\ncommon_name = \"Device %s\"\n", m, ver, m)
		fmt.Fprintf(&b, "manufacturer = %q\nclassification = \"laptop\"\n", m)
		fmt.Fprintf(&b, "primary_model_identifiers = [\"%s-1\"]\nextended_model_identifiers = []\n\n", m)
	}
	return b.String()
}

// newTestManager returns a manager reading from an in-memory directory.
func newTestManager(t *testing.T, logger *zap.Logger, files map[string]string) (*Manager, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("extensions", 0o755))
	writeFiles(t, fs, files)

	return NewManager(source.NewLocalSource(fs, "extensions", logger), logger), fs
}

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, "extensions/"+name, []byte(content), 0o644))
	}
}
