package reconcile

import "context"

// Store is the persistent-store collaborator used by a reconciliation pass.
// Implementations may block on I/O; the engine never calls them concurrently.
type Store[E Entity] interface {
	// ListLoaded returns a snapshot of the metadata of every committed entity.
	// It is called once at the start of a pass.
	ListLoaded(ctx context.Context) ([]Metadata, error)

	// Load commits an entity whose ID is not present in the store.
	Load(ctx context.Context, entity E) error

	// Reload replaces the committed entity that has the same ID.
	Reload(ctx context.Context, entity E) error
}
