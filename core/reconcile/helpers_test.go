package reconcile

import (
	"context"

	"inventory-manager/core/version"

	"github.com/stretchr/testify/mock"
)

// testEntity is a staged entity with an opaque payload.
type testEntity struct {
	meta    Metadata
	payload string
}

func (e testEntity) Metadata() Metadata {
	return e.meta
}

func meta(id, name, v string) Metadata {
	return Metadata{ID: ID(id), DisplayName: name, Version: version.MustParse(v)}
}

func staged(id, name, v string) testEntity {
	return testEntity{meta: meta(id, name, v), payload: "payload-" + id}
}

// mockStore is a testify mock implementing Store[testEntity].
type mockStore struct {
	mock.Mock
}

func (m *mockStore) ListLoaded(ctx context.Context) ([]Metadata, error) {
	args := m.Called(ctx)
	if loaded, ok := args.Get(0).([]Metadata); ok {
		return loaded, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) Load(ctx context.Context, entity testEntity) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *mockStore) Reload(ctx context.Context, entity testEntity) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}
