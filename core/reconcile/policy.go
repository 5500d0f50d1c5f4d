package reconcile

import "go.uber.org/zap"

// ShouldReload reports whether the staged version is strictly newer than the
// loaded one. It does not look at the override flag; use Resolve for decisions.
func (c *Conflict) ShouldReload() bool {
	if c.VersionChange == nil {
		return false
	}
	return c.VersionChange.LoadedVersion.Less(c.VersionChange.StagedVersion)
}

// Resolve decides what to do with a conflicting staged entity.
//
// A version change is reloaded only when override is enabled and the staged
// version is newer. Every other conflict is skipped.
func Resolve(c Conflict, override bool) Resolution {
	if c.VersionChange == nil {
		if c.NameChange != nil {
			return Resolution{Action: ActionSkip, Reason: ReasonNameChanged}
		}
		return Resolution{Action: ActionSkip, Reason: ReasonUnchanged}
	}

	if !override {
		return Resolution{Action: ActionSkip, Reason: ReasonOverrideDisabled}
	}

	if c.ShouldReload() {
		return Resolution{Action: ActionReload, Reason: ReasonUpdated}
	}
	return Resolution{Action: ActionSkip, Reason: ReasonNewerLoaded}
}

// logConflict writes the messages describing a conflict and its resolution.
func logConflict(logger *zap.Logger, c Conflict, res Resolution) {
	l := logger.With(zap.String("id", c.ID.String()))

	if c.NameChange != nil {
		l.Warn("Loaded and staged entity have conflicting display names",
			zap.String("loaded_name", c.NameChange.LoadedName),
			zap.String("staged_name", c.NameChange.StagedName),
		)
	}

	switch res.Reason {
	case ReasonOverrideDisabled:
		l.Error("Skipping entity because a different version is already loaded",
			zap.Stringer("staged_version", c.VersionChange.StagedVersion),
			zap.Stringer("loaded_version", c.VersionChange.LoadedVersion),
		)
	case ReasonUpdated:
		l.Warn("Updating entity",
			zap.Stringer("from", c.VersionChange.LoadedVersion),
			zap.Stringer("to", c.VersionChange.StagedVersion),
		)
	case ReasonNewerLoaded:
		l.Warn("Skipping entity because a newer version is already loaded",
			zap.Stringer("staged_version", c.VersionChange.StagedVersion),
			zap.Stringer("loaded_version", c.VersionChange.LoadedVersion),
		)
	default:
		l.Warn("Skipping entity because it is already loaded and its version has not been changed")
	}
}
