package filter

import (
	"strings"

	"github.com/rcliao/bio-browser/internal/model"
)

// Chips lists one chip per selected facet value: domains first, then
// confidence bands, then biography lengths, each in selection order.
func Chips(s *State) []model.Chip {
	var chips []model.Chip
	for _, d := range model.Dimensions {
		for _, v := range s.set(d).values {
			chips = append(chips, model.Chip{Dimension: d, Value: v})
		}
	}
	return chips
}

// HasActiveFilters reports whether any criterion narrows the result.
func HasActiveFilters(s *State) bool {
	return strings.TrimSpace(s.query) != "" ||
		s.minExperience > 0 ||
		!s.domains.empty() ||
		!s.confidence.empty() ||
		!s.bioLengths.empty()
}

// SearchChip returns the trimmed query when a text filter is active.
func SearchChip(s *State) (string, bool) {
	q := strings.TrimSpace(s.query)
	return q, q != ""
}

// ExperienceChip returns the floor when it is above zero.
func ExperienceChip(s *State) (int, bool) {
	return s.minExperience, s.minExperience > 0
}
