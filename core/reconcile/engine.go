package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// LoadAll fetches the loaded snapshot from store and runs a reconciliation pass
// over staged.
func LoadAll[E Entity](ctx context.Context, store Store[E], staged []E, opts Options, logger *zap.Logger) (*Report, error) {
	logger.Info("Loading staged entities into store...", zap.Int("staged", len(staged)))

	loaded, err := store.ListLoaded(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loaded entities: %w", err)
	}

	return Reconcile(ctx, store, staged, loaded, opts, logger)
}

// Reconcile runs one sequential pass over staged, matching each entity against
// loaded. Entities without a match are loaded; conflicts are resolved with
// Resolve and reloaded only when the resolution says so. Every conflict is
// included in the returned report.
//
// The first store error aborts the pass. Effects already applied are kept.
func Reconcile[E Entity](ctx context.Context, store Store[E], staged []E, loaded []Metadata, opts Options, logger *zap.Logger) (*Report, error) {
	candidates := NewCandidates(loaded)
	report := &Report{
		Conflicts: []Conflict{},
		Actions:   make([]Action, 0, len(staged)),
		DryRun:    opts.DryRun,
	}

	for _, entity := range staged {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("reconciliation aborted: %w", err)
		}

		meta := entity.Metadata()
		report.Summary.Staged++

		conflict, found := FindConflict(meta, candidates)
		if !found {
			logger.Info("Loading entity", zap.String("id", meta.ID.String()))
			if !opts.DryRun {
				if err := store.Load(ctx, entity); err != nil {
					return report, fmt.Errorf("failed to load %s: %w", meta.ID, err)
				}
			}
			report.record(Action{Type: ActionLoad, ID: meta.ID, Reason: ReasonNew})
			continue
		}

		res := Resolve(*conflict, opts.Override)
		logConflict(logger, *conflict, res)

		if res.Action == ActionReload && !opts.DryRun {
			if err := store.Reload(ctx, entity); err != nil {
				return report, fmt.Errorf("failed to reload %s: %w", meta.ID, err)
			}
		}

		report.Conflicts = append(report.Conflicts, *conflict)
		report.Summary.Conflicts++
		report.record(Action{Type: res.Action, ID: meta.ID, Reason: res.Reason})
	}

	return report, nil
}

// record appends an action and updates the summary counters.
func (r *Report) record(a Action) {
	r.Actions = append(r.Actions, a)
	switch a.Type {
	case ActionLoad:
		r.Summary.Loaded++
	case ActionReload:
		r.Summary.Reloaded++
	case ActionSkip:
		r.Summary.Skipped++
	}
}
