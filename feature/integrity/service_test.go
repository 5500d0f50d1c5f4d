package integrity

import (
	"context"
	"testing"

	"inventory-manager/core/database"
	"inventory-manager/core/source"
	"inventory-manager/core/storage/mocks"
	"inventory-manager/feature/inventory"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const goodDefinition = "extension_id = \"core\"\nextension_common_name = \"Core\"\nextension_version = \"1.0.0\"\n"

// newTestService wires a service against mocks, an in-memory filesystem and SQLite.
func newTestService(t *testing.T, migrate bool) (*Service, *mocks.Client, afero.Fs) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	if migrate {
		require.NoError(t, inventory.NewStore(db).Migrate(context.Background()))
	}

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("extensions", 0o755))

	mockClient := new(mocks.Client)
	src := source.NewLocalSource(fs, "extensions", zap.NewNop())
	return NewService(mockClient, "test-bucket", "extensions/", src, db, zap.NewNop()), mockClient, fs
}

func TestService_Structure(t *testing.T) {
	svc, mockClient, _ := newTestService(t, false)

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Objects())

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"extensions/"}, missing)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", "extensions/.keep", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		err := svc.FixStructure(context.Background(), []string{"extensions/"})
		assert.NoError(t, err)
	})
}

func TestService_Schema(t *testing.T) {
	svc, _, _ := newTestService(t, true)

	report, err := svc.CheckSchema()
	require.NoError(t, err)
	assert.True(t, report.Matched)

	empty, _, _ := newTestService(t, false)
	report, err = empty.CheckSchema()
	require.NoError(t, err)
	assert.False(t, report.Matched)
}

func TestService_Definitions(t *testing.T) {
	svc, _, fs := newTestService(t, false)
	require.NoError(t, afero.WriteFile(fs, "extensions/core.toml", []byte(goodDefinition), 0o644))

	report, err := svc.CheckDefinitions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Total)
	assert.Empty(t, report.Invalid)
}

func TestService_SchemaNilDB(t *testing.T) {
	svc := NewService(nil, "", "", nil, (*gorm.DB)(nil), zap.NewNop())
	_, err := svc.CheckSchema()
	assert.Error(t, err)
}
