package reconcile

import "inventory-manager/core/version"

// Compare diffs a loaded and a staged Metadata value. It returns false if the
// IDs differ, because the two are then not comparable.
func Compare(loaded, staged Metadata) (Diff, bool) {
	if loaded.ID != staged.ID {
		return Diff{}, false
	}

	return Diff{
		SameDisplayName: loaded.DisplayName == staged.DisplayName,
		Order:           OrderOf(staged.Version, loaded.Version),
	}, true
}

// OrderOf compares a staged version against a loaded version.
func OrderOf(staged, loaded version.Version) VersionOrder {
	switch c := staged.Compare(loaded); {
	case c > 0:
		return StagedHigher
	case c < 0:
		return StagedLower
	default:
		return Equal
	}
}
