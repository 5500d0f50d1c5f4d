package inventory

import (
	"context"
	"errors"
	"testing"

	"inventory-manager/core/reconcile"
	"inventory-manager/core/source"
	"inventory-manager/core/version"
	"inventory-manager/feature/inventory/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func mustParse(t *testing.T, id, name, ver string, manufacturers ...string) models.InventoryExtension {
	t.Helper()
	ext, err := ParseDocument(source.Document{
		Name:   id + ".toml",
		Format: source.FormatTOML,
		Data:   []byte(extensionTOML(id, name, ver, manufacturers...)),
	})
	require.NoError(t, err)
	return ext
}

func count(t *testing.T, store *Store, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, store.db.Model(model).Count(&n).Error)
	return n
}

func TestStore_LoadAndRead(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Load(ctx, mustParse(t, "zeta", "Zeta", "1.0.0", "acme")))
	require.NoError(t, store.Load(ctx, mustParse(t, "alpha", "Alpha", "2.0.0-rc.1", "acme", "globex")))

	loaded, err := store.ListLoaded(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, reconcile.ID("alpha"), loaded[0].ID)
	assert.True(t, loaded[0].Version.Equal(version.MustParse("2.0.0-rc.1")))
	assert.Equal(t, "Zeta", loaded[1].DisplayName)

	// acme is shared by both extensions.
	assert.EqualValues(t, 2, count(t, store, &models.ManufacturerRecord{}))
	assert.EqualValues(t, 3, count(t, store, &models.ManufacturerExtension{}))
	assert.EqualValues(t, 1, count(t, store, &models.ClassificationRecord{}))

	detail, err := store.GetExtension(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0-rc.1", detail.Version)
	assert.Equal(t, []string{"acme", "globex"}, detail.Manufacturers)
	assert.Equal(t, []string{"laptop"}, detail.Classifications)
	assert.Equal(t, 2, detail.DeviceCount)
	assert.Equal(t, []string{"acme-1"}, detail.Devices[0].PrimaryModelIdentifiers)

	list, err := store.ListExtensions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.ExtensionSummary{
		{ID: "alpha", DisplayName: "Alpha", Version: "2.0.0-rc.1"},
		{ID: "zeta", DisplayName: "Zeta", Version: "1.0.0"},
	}, list)
}

func TestStore_LoadDuplicateFails(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	ext := mustParse(t, "core", "Core", "1.0.0", "acme")

	require.NoError(t, store.Load(ctx, ext))
	assert.Error(t, store.Load(ctx, ext))
	assert.EqualValues(t, 1, count(t, store, &models.DeviceRecord{}), "failed load is rolled back")
}

func TestStore_Reload(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Load(ctx, mustParse(t, "core", "Core", "1.0.0", "acme", "globex")))
	require.NoError(t, store.Load(ctx, mustParse(t, "other", "Other", "1.0.0", "acme")))

	require.NoError(t, store.Reload(ctx, mustParse(t, "core", "Core", "2.0.0", "initech")))

	detail, err := store.GetExtension(ctx, "core")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", detail.Version)
	assert.Equal(t, []string{"initech"}, detail.Manufacturers)
	require.Len(t, detail.Devices, 1)
	assert.Equal(t, "core/initech/laptop/initech-2.0.0", detail.Devices[0].ID)

	var ids []string
	require.NoError(t, store.db.Model(&models.ManufacturerRecord{}).Order("id").Pluck("id", &ids).Error)
	assert.Equal(t, []string{"acme", "initech"}, ids, "globex is orphaned, acme is still declared by other")
}

func TestStore_ReloadMissing(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Reload(context.Background(), mustParse(t, "ghost", "Ghost", "1.0.0", "acme"))
	assert.ErrorIs(t, err, ErrExtensionNotFound)
}

func TestStore_GetExtensionMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.GetExtension(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrExtensionNotFound)
}

func TestStore_ListLoaded_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `inventory_extensions`").WillReturnError(errors.New("connection reset"))

	_, err := NewStore(db).ListLoaded(context.Background())
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListLoaded_InvalidVersion(t *testing.T) {
	db, mock := setupMockDB(t)
	rows := sqlmock.NewRows([]string{"id", "display_name", "version"}).AddRow("core", "Core", "one")
	mock.ExpectQuery("SELECT \\* FROM `inventory_extensions`").WillReturnRows(rows)

	_, err := NewStore(db).ListLoaded(context.Background())
	assert.ErrorIs(t, err, version.ErrInvalid)
}

func TestStore_Load_RollsBackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `inventory_extensions`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := NewStore(db).Load(context.Background(), mustParse(t, "core", "Core", "1.0.0", "acme"))
	assert.ErrorContains(t, err, "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestScenarios runs the conflict scenarios end to end against SQLite.
func TestScenarios(t *testing.T) {
	tests := []struct {
		name       string
		loaded     [3]string // id, name, version
		staged     [3]string
		override   bool
		wantAction reconcile.ActionType
		wantReason reconcile.Reason
		wantStored string
	}{
		{"A unchanged", [3]string{"a", "Foo", "1.0.0"}, [3]string{"a", "Foo", "1.0.0"}, true, reconcile.ActionSkip, reconcile.ReasonUnchanged, "1.0.0"},
		{"B upgrade with override", [3]string{"a", "Foo", "1.0.0"}, [3]string{"a", "Foo", "2.0.0"}, true, reconcile.ActionReload, reconcile.ReasonUpdated, "2.0.0"},
		{"C upgrade without override", [3]string{"a", "Foo", "1.0.0"}, [3]string{"a", "Foo", "2.0.0"}, false, reconcile.ActionSkip, reconcile.ReasonOverrideDisabled, "1.0.0"},
		{"D downgrade", [3]string{"a", "Foo", "2.0.0"}, [3]string{"a", "Foo", "1.0.0"}, true, reconcile.ActionSkip, reconcile.ReasonNewerLoaded, "2.0.0"},
		{"E rename", [3]string{"a", "Foo", "1.0.0"}, [3]string{"a", "Bar", "1.0.0"}, true, reconcile.ActionSkip, reconcile.ReasonNameChanged, "1.0.0"},
		{"F new identity", [3]string{"b", "Foo", "1.0.0"}, [3]string{"a", "Foo", "1.0.0"}, false, reconcile.ActionLoad, reconcile.ReasonNew, "1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t)
			ctx := context.Background()
			require.NoError(t, store.Load(ctx, mustParse(t, tt.loaded[0], tt.loaded[1], tt.loaded[2], "acme")))

			staged := []models.InventoryExtension{mustParse(t, tt.staged[0], tt.staged[1], tt.staged[2], "acme")}
			report, err := reconcile.LoadAll(ctx, store, staged, reconcile.Options{Override: tt.override}, zap.NewNop())
			require.NoError(t, err)

			require.Len(t, report.Actions, 1)
			assert.Equal(t, tt.wantAction, report.Actions[0].Type)
			assert.Equal(t, tt.wantReason, report.Actions[0].Reason)

			detail, err := store.GetExtension(ctx, tt.staged[0])
			require.NoError(t, err)
			assert.Equal(t, tt.wantStored, detail.Version)
		})
	}
}
