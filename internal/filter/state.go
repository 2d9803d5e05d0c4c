// Package filter implements faceted filtering over profile records: the
// mutable filter criteria, the pure filter engine and the active-chip
// projection.
package filter

import (
	"fmt"

	"github.com/rcliao/bio-browser/internal/model"
)

const (
	MinExperience = 0
	MaxExperience = 100
)

// State holds the user's current filter criteria. The zero value is the
// default state: no query, floor 0, every facet unconstrained.
//
// State is owned by a single session and is not safe for concurrent use.
type State struct {
	query         string
	minExperience int
	domains       facetSet
	confidence    facetSet
	bioLengths    facetSet
}

// NewState returns a State with every field at its default.
func NewState() *State {
	return &State{}
}

// Query returns the query exactly as it was set.
func (s *State) Query() string { return s.query }

// MinExperience returns the experience floor.
func (s *State) MinExperience() int { return s.minExperience }

// SetQuery replaces the query verbatim. Trimming happens at match time.
func (s *State) SetQuery(text string) {
	s.query = text
}

// SetMinExperience stores n clamped into [0, 100].
func (s *State) SetMinExperience(n int) {
	s.minExperience = min(max(n, MinExperience), MaxExperience)
}

// ToggleFacet adds value to the dimension's set, or removes it if already
// selected. Other dimensions are never touched.
func (s *State) ToggleFacet(d model.Dimension, value string) {
	s.set(d).toggle(value)
}

// RemoveChip removes the chip's value from the chip's own dimension only.
func (s *State) RemoveChip(c model.Chip) {
	s.set(c.Dimension).remove(c.Value)
}

// Selected returns a copy of the values selected in the dimension, in
// insertion order.
func (s *State) Selected(d model.Dimension) []string {
	return s.set(d).list()
}

// Has reports whether value is selected in the dimension.
func (s *State) Has(d model.Dimension, value string) bool {
	return s.set(d).has(value)
}

// Reset returns every field to its default.
func (s *State) Reset() {
	*s = State{}
}

// set dispatches to the facet set for d. An unknown dimension is a
// programming error.
func (s *State) set(d model.Dimension) *facetSet {
	switch d {
	case model.DimensionDomain:
		return &s.domains
	case model.DimensionConfidence:
		return &s.confidence
	case model.DimensionBioLength:
		return &s.bioLengths
	default:
		panic(fmt.Sprintf("filter: unknown dimension %d", int(d)))
	}
}
