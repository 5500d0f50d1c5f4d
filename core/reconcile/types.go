package reconcile

import "inventory-manager/core/version"

// ID uniquely names an entity across the staged and loaded collections.
type ID string

// String returns the ID as a plain string.
func (id ID) String() string {
	return string(id)
}

// Metadata is the part of an entity that takes part in reconciliation.
// Everything else an entity carries is opaque payload.
type Metadata struct {
	// ID is the identity used for matching.
	ID ID `json:"id"`

	// DisplayName is the human readable name of the entity.
	DisplayName string `json:"display_name"`

	// Version is the semantic version of the entity.
	Version version.Version `json:"version" swaggertype:"string"`
}

// Entity is a staged record. Implementations carry their own payload.
type Entity interface {
	Metadata() Metadata
}

// VersionOrder is the outcome of comparing a staged version against a loaded one.
type VersionOrder int

const (
	// Equal means both versions have the same precedence.
	Equal VersionOrder = iota
	// StagedHigher means the staged version is newer than the loaded one.
	StagedHigher
	// StagedLower means the staged version is older than the loaded one.
	StagedLower
)

// String returns a lower-case name for the order.
func (o VersionOrder) String() string {
	switch o {
	case Equal:
		return "equal"
	case StagedHigher:
		return "staged_higher"
	case StagedLower:
		return "staged_lower"
	default:
		return "unknown"
	}
}

// Diff describes how two Metadata values with the same ID differ.
type Diff struct {
	// SameDisplayName is true when both display names are identical.
	SameDisplayName bool

	// Order compares the staged version against the loaded version.
	Order VersionOrder
}

// NameChange records differing display names.
type NameChange struct {
	LoadedName string `json:"loaded_name"`
	StagedName string `json:"staged_name"`
}

// VersionChange records differing versions.
type VersionChange struct {
	LoadedVersion version.Version `json:"loaded_version" swaggertype:"string"`
	StagedVersion version.Version `json:"staged_version" swaggertype:"string"`
}

// Conflict is produced when a staged and a loaded entity share an ID.
// It is never persisted.
type Conflict struct {
	// ID is the shared identity.
	ID ID `json:"id"`

	// NameChange is set when the display names differ.
	NameChange *NameChange `json:"name_change,omitempty"`

	// VersionChange is set when the display names match and the versions differ.
	// A version difference under a name change is not recorded here.
	VersionChange *VersionChange `json:"version_change,omitempty"`
}

// ActionType is the effect chosen for a staged entity.
type ActionType string

const (
	// ActionLoad commits an entity whose ID is not loaded yet.
	ActionLoad ActionType = "load"
	// ActionReload replaces the committed entity under the same ID.
	ActionReload ActionType = "reload"
	// ActionSkip leaves the committed entity untouched.
	ActionSkip ActionType = "skip"
)

// Reason explains why an action was chosen.
type Reason string

const (
	ReasonNew              Reason = "new"
	ReasonUnchanged        Reason = "unchanged"
	ReasonNameChanged      Reason = "name_changed"
	ReasonOverrideDisabled Reason = "override_disabled"
	ReasonUpdated          Reason = "updated"
	ReasonNewerLoaded      Reason = "newer_loaded"
)

// Resolution is the outcome of the decision policy for one entity.
type Resolution struct {
	Action ActionType `json:"action"`
	Reason Reason     `json:"reason"`
}

// Action is a report entry for one staged entity.
type Action struct {
	// Type is the effect that was (or, in dry-run mode, would have been) applied.
	Type ActionType `json:"type"`

	// ID is the entity identity.
	ID ID `json:"id"`

	// Reason explains the choice.
	Reason Reason `json:"reason"`
}

// Report is the result of one reconciliation pass.
type Report struct {
	// Conflicts lists every collision in staged input order, including skipped ones.
	Conflicts []Conflict `json:"conflicts"`

	// Actions lists the effect chosen for every staged entity, in staged input order.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	// DryRun is true when no store effects were issued.
	DryRun bool `json:"dry_run"`
}

// Summary provides aggregate statistics for a Report.
type Summary struct {
	// Staged is the number of staged entities processed.
	Staged int `json:"staged"`

	// Loaded counts ActionLoad entries.
	Loaded int `json:"loaded"`

	// Reloaded counts ActionReload entries.
	Reloaded int `json:"reloaded"`

	// Skipped counts ActionSkip entries.
	Skipped int `json:"skipped"`

	// Conflicts counts identity collisions.
	Conflicts int `json:"conflicts"`
}

// Options controls a reconciliation pass.
type Options struct {
	// Override allows version-differing conflicts to be reloaded. Without it,
	// any conflict with a version change is skipped.
	Override bool

	// DryRun computes the full report without calling Load or Reload.
	DryRun bool
}
