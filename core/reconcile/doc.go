// Package reconcile merges staged entities into the set of entities already
// committed to a persistent store.
//
// Every staged entity is matched by identity against a snapshot of the loaded
// entities. When both sides share an ID the pair is a Conflict, classified as a
// display name change, a version change, or no change at all. The Resolve
// policy then turns the conflict and the caller's override flag into a single
// action: load, reload or skip.
//
// # Components
//
//   - Compare: pure diff of two Metadata values sharing an ID.
//   - Candidates / FindConflict: consumes at most one loaded entry per staged entity.
//   - Resolve: the decision policy. It is the only place where the override flag
//     and the upgrade check are combined.
//   - StagingSet: collects staged entities and rejects duplicate IDs.
//   - Reconcile / LoadAll: the sequential pass that issues Load and Reload calls
//     through a Store and returns a Report.
//
// # Ordering
//
// A pass is strictly sequential. One staged entity is matched, decided and
// applied before the next one is looked at, and no two Store calls are ever in
// flight at the same time. Report entries therefore follow staged input order.
//
// # Usage Example
//
//	set := reconcile.NewStagingSet[models.InventoryExtension]()
//	for _, ext := range parsed {
//	    if err := set.Stage(ext); err != nil {
//	        logger.Error("Extension already staged, skipping", zap.Error(err))
//	    }
//	}
//
//	l := logger.With(zap.String("kind", "extension"))
//	report, err := reconcile.LoadAll(ctx, store, set.Entities(), reconcile.Options{Override: true}, l)
//
// # Logging
//
// Log messages name the generic "entity". Callers attach the domain noun as a
// "kind" field on the logger they pass in.
package reconcile
