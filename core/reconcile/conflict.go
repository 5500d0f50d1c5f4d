package reconcile

// Candidates is the working set of loaded entities that have not been matched
// yet during a pass. Entries keep the order they were supplied in.
type Candidates struct {
	entries []Metadata
}

// NewCandidates copies loaded into a new candidate set. The caller's slice is
// never modified.
func NewCandidates(loaded []Metadata) *Candidates {
	entries := make([]Metadata, len(loaded))
	copy(entries, loaded)
	return &Candidates{entries: entries}
}

// Len returns the number of unmatched entries.
func (c *Candidates) Len() int {
	return len(c.entries)
}

// Remaining returns a copy of the unmatched entries in their original order.
func (c *Candidates) Remaining() []Metadata {
	out := make([]Metadata, len(c.entries))
	copy(out, c.entries)
	return out
}

// FindConflict looks for a loaded entry sharing the staged ID. The first match
// is classified into a Conflict and removed from the candidates so that later
// calls in the same pass cannot match it again.
func FindConflict(staged Metadata, candidates *Candidates) (*Conflict, bool) {
	for i, loaded := range candidates.entries {
		diff, ok := Compare(loaded, staged)
		if !ok {
			continue
		}

		conflict := &Conflict{ID: loaded.ID}
		if !diff.SameDisplayName {
			conflict.NameChange = &NameChange{
				LoadedName: loaded.DisplayName,
				StagedName: staged.DisplayName,
			}
		}
		if diff.SameDisplayName && diff.Order != Equal {
			conflict.VersionChange = &VersionChange{
				LoadedVersion: loaded.Version,
				StagedVersion: staged.Version,
			}
		}

		candidates.entries = append(candidates.entries[:i], candidates.entries[i+1:]...)
		return conflict, true
	}

	return nil, false
}
