package reconcile

import (
	"errors"
	"fmt"
)

// ErrDuplicateIdentity is matched by DuplicateIdentityError.
var ErrDuplicateIdentity = errors.New("duplicate identity")

// DuplicateIdentityError is returned when an entity with an already staged ID
// is offered to a StagingSet.
type DuplicateIdentityError struct {
	ID ID
}

// Error implements the error interface.
func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("entity with ID %s already staged", e.ID)
}

// Is implements errors.Is support.
func (e *DuplicateIdentityError) Is(target error) bool {
	return target == ErrDuplicateIdentity
}

// StagingSet accumulates staged entities with unique IDs, preserving insertion order.
type StagingSet[E Entity] struct {
	entities []E
	ids      map[ID]struct{}
}

// NewStagingSet creates an empty staging set.
func NewStagingSet[E Entity]() *StagingSet[E] {
	return &StagingSet[E]{ids: make(map[ID]struct{})}
}

// Stage adds e to the set. If an entity with the same ID is already staged,
// e is dropped and a *DuplicateIdentityError is returned. The first staged
// entity always wins.
func (s *StagingSet[E]) Stage(e E) error {
	id := e.Metadata().ID
	if _, exists := s.ids[id]; exists {
		return &DuplicateIdentityError{ID: id}
	}

	s.ids[id] = struct{}{}
	s.entities = append(s.entities, e)
	return nil
}

// Contains reports whether an entity with the given ID is staged.
func (s *StagingSet[E]) Contains(id ID) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of staged entities.
func (s *StagingSet[E]) Len() int {
	return len(s.entities)
}

// Entities returns the staged entities in insertion order.
func (s *StagingSet[E]) Entities() []E {
	out := make([]E, len(s.entities))
	copy(out, s.entities)
	return out
}
